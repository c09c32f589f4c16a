package asset

import "errors"

// ErrMissingKey marks a record without its asset key (serial, code, or
// serial_or_code depending on the category).
var ErrMissingKey = errors.New("record is missing its asset key")

// ErrInvalidRecord marks a client payload that failed validation:
// undecodable field types, a blank part name, a non-positive quantity.
// Transport maps it to a client error, never a store failure.
var ErrInvalidRecord = errors.New("invalid record")

// Record is the closed sum of every maintenance event shape. Each
// variant carries its own field set; the batch dispatcher switches over
// the concrete types instead of a string-keyed table.
type Record interface {
	Category() Category
	// Key returns the asset key the record is filed under.
	Key() string
	// EventDate returns the category's designated timestamp, used to
	// pick the latest record per category. Empty when the category has
	// no explicit event date (the store falls back to created_at).
	EventDate() string
}

// Validate rejects records that cannot be filed anywhere.
func Validate(r Record) error {
	if r == nil {
		return errors.New("record is required")
	}
	if r.Key() == "" {
		return ErrMissingKey
	}
	return nil
}

type EngineSupply struct {
	Serial     string `json:"serial"`
	EngineType string `json:"engine_type"`
	Model      string `json:"model"`
	PrevSite   string `json:"prev_site"`
	SupDate    string `json:"sup_date"`
	Supplier   string `json:"supplier"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func (EngineSupply) Category() Category { return EngineSupplyCategory }
func (r EngineSupply) Key() string      { return r.Serial }
func (r EngineSupply) EventDate() string {
	return r.SupDate
}

type EngineIssue struct {
	Serial    string `json:"serial"`
	CurrSite  string `json:"curr_site"`
	Receiver  string `json:"receiver"`
	Requester string `json:"requester"`
	IssueDate string `json:"issue_date"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (EngineIssue) Category() Category  { return EngineIssueCategory }
func (r EngineIssue) Key() string       { return r.Serial }
func (r EngineIssue) EventDate() string { return r.IssueDate }

type EngineRehab struct {
	Serial    string `json:"serial"`
	Rehabber  string `json:"rehabber"`
	RehabType string `json:"rehab_type"`
	RehabDate string `json:"rehab_date"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (EngineRehab) Category() Category  { return EngineRehabCategory }
func (r EngineRehab) Key() string       { return r.Serial }
func (r EngineRehab) EventDate() string { return r.RehabDate }

type EngineCheck struct {
	Serial      string `json:"serial"`
	Inspector   string `json:"inspector"`
	Description string `json:"description"`
	CheckDate   string `json:"check_date"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (EngineCheck) Category() Category  { return EngineCheckCategory }
func (r EngineCheck) Key() string       { return r.Serial }
func (r EngineCheck) EventDate() string { return r.CheckDate }

type EngineUpload struct {
	Serial      string `json:"serial"`
	RehabUp     string `json:"rehab_up"`
	CheckUp     string `json:"check_up"`
	RehabUpDate string `json:"rehab_up_date"`
	CheckUpDate string `json:"check_up_date"`
	Notes       string `json:"notes"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func (EngineUpload) Category() Category  { return EngineUploadCategory }
func (r EngineUpload) Key() string       { return r.Serial }
func (r EngineUpload) EventDate() string { return r.RehabUpDate }

type EngineLathe struct {
	Serial    string `json:"serial"`
	Lathe     string `json:"lathe"`
	LatheDate string `json:"lathe_date"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (EngineLathe) Category() Category  { return EngineLatheCategory }
func (r EngineLathe) Key() string       { return r.Serial }
func (r EngineLathe) EventDate() string { return r.LatheDate }

// EnginePump carries no event date of its own; latest-selection falls
// back to created_at.
type EnginePump struct {
	Serial     string `json:"serial"`
	PumpSerial string `json:"pump_serial"`
	PumpRehab  string `json:"pump_rehab"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func (EnginePump) Category() Category  { return EnginePumpCategory }
func (r EnginePump) Key() string       { return r.Serial }
func (r EnginePump) EventDate() string { return "" }

type EngineElectrical struct {
	Serial     string `json:"serial"`
	Kind       string `json:"kind"`
	Starter    string `json:"starter"`
	Alternator string `json:"alternator"`
	WorkDate   string `json:"work_date"`
	Notes      string `json:"notes"`
	CreatedAt  string `json:"created_at,omitempty"`
}

func (EngineElectrical) Category() Category  { return EngineElectricalCategory }
func (r EngineElectrical) Key() string       { return r.Serial }
func (r EngineElectrical) EventDate() string { return r.WorkDate }

type GeneratorSupply struct {
	Code      string `json:"code"`
	GenType   string `json:"gen_type"`
	Model     string `json:"model"`
	PrevSite  string `json:"prev_site"`
	SupDate   string `json:"sup_date"`
	Supplier  string `json:"supplier"`
	Vendor    string `json:"vendor"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (GeneratorSupply) Category() Category  { return GeneratorSupplyCategory }
func (r GeneratorSupply) Key() string       { return r.Code }
func (r GeneratorSupply) EventDate() string { return r.SupDate }

type GeneratorIssue struct {
	Code      string `json:"code"`
	IssueDate string `json:"issue_date"`
	Receiver  string `json:"receiver"`
	Requester string `json:"requester"`
	CurrSite  string `json:"curr_site"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (GeneratorIssue) Category() Category  { return GeneratorIssueCategory }
func (r GeneratorIssue) Key() string       { return r.Code }
func (r GeneratorIssue) EventDate() string { return r.IssueDate }

type GeneratorInspect struct {
	Code      string `json:"code"`
	Inspector string `json:"inspector"`
	ElecRehab string `json:"elec_rehab"`
	RehabDate string `json:"rehab_date"`
	RehabUp   string `json:"rehab_up"`
	CheckUp   string `json:"check_up"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"created_at,omitempty"`
}

func (GeneratorInspect) Category() Category  { return GeneratorInspectCategory }
func (r GeneratorInspect) Key() string       { return r.Code }
func (r GeneratorInspect) EventDate() string { return r.RehabDate }

// SparePart records consumption of a part on either asset family.
type SparePart struct {
	ItemKind     string `json:"item_kind"`
	SerialOrCode string `json:"serial_or_code"`
	PartName     string `json:"part_name"`
	Qty          int    `json:"qty"`
	Condition    string `json:"condition"`
	Model        string `json:"model"`
	Notes        string `json:"notes"`
	UsedAt       string `json:"used_at"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (SparePart) Category() Category  { return SparePartCategory }
func (r SparePart) Key() string       { return r.SerialOrCode }
func (r SparePart) EventDate() string { return r.UsedAt }
