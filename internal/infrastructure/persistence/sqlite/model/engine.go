package model

type EngineSupply struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial     string `gorm:"column:serial;type:text;not null;index"`
	EngineType string `gorm:"column:engine_type;type:text;not null;default:''"`
	Model      string `gorm:"column:model;type:text;not null;default:''"`
	PrevSite   string `gorm:"column:prev_site;type:text;not null;default:''"`
	SupDate    string `gorm:"column:sup_date;type:text;not null;default:''"`
	Supplier   string `gorm:"column:supplier;type:text;not null;default:''"`
	Notes      string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt  string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineSupply) TableName() string {
	return "engine_supplies"
}

type EngineIssue struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial    string `gorm:"column:serial;type:text;not null;index"`
	CurrSite  string `gorm:"column:curr_site;type:text;not null;default:''"`
	Receiver  string `gorm:"column:receiver;type:text;not null;default:''"`
	Requester string `gorm:"column:requester;type:text;not null;default:''"`
	IssueDate string `gorm:"column:issue_date;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineIssue) TableName() string {
	return "engine_issues"
}

type EngineRehab struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial    string `gorm:"column:serial;type:text;not null;index"`
	Rehabber  string `gorm:"column:rehabber;type:text;not null;default:''"`
	RehabType string `gorm:"column:rehab_type;type:text;not null;default:''"`
	RehabDate string `gorm:"column:rehab_date;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineRehab) TableName() string {
	return "engine_rehabs"
}

// EngineCheck stores the inspection description under the canonical
// description column. Older databases carry the same values under a
// legacy desc column; the schema reconciler copies those over once and
// the legacy column is left in place for historical readers.
type EngineCheck struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial      string `gorm:"column:serial;type:text;not null;index"`
	Inspector   string `gorm:"column:inspector;type:text;not null;default:''"`
	Description string `gorm:"column:description;type:text;not null;default:''"`
	CheckDate   string `gorm:"column:check_date;type:text;not null;default:''"`
	Notes       string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt   string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineCheck) TableName() string {
	return "engine_checks"
}

type EngineUpload struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial      string `gorm:"column:serial;type:text;not null;index"`
	RehabUp     string `gorm:"column:rehab_up;type:text;not null;default:''"`
	CheckUp     string `gorm:"column:check_up;type:text;not null;default:''"`
	RehabUpDate string `gorm:"column:rehab_up_date;type:text;not null;default:''"`
	CheckUpDate string `gorm:"column:check_up_date;type:text;not null;default:''"`
	Notes       string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt   string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineUpload) TableName() string {
	return "engine_uploads"
}

type EngineLathe struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial    string `gorm:"column:serial;type:text;not null;index"`
	Lathe     string `gorm:"column:lathe;type:text;not null;default:''"`
	LatheDate string `gorm:"column:lathe_date;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineLathe) TableName() string {
	return "engine_lathes"
}

type EnginePump struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial     string `gorm:"column:serial;type:text;not null;index"`
	PumpSerial string `gorm:"column:pump_serial;type:text;not null;default:''"`
	PumpRehab  string `gorm:"column:pump_rehab;type:text;not null;default:''"`
	Notes      string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt  string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EnginePump) TableName() string {
	return "engine_pumps"
}

type EngineElectrical struct {
	ID         uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Serial     string `gorm:"column:serial;type:text;not null;index"`
	Kind       string `gorm:"column:kind;type:text;not null;default:''"`
	Starter    string `gorm:"column:starter;type:text;not null;default:''"`
	Alternator string `gorm:"column:alternator;type:text;not null;default:''"`
	WorkDate   string `gorm:"column:work_date;type:text;not null;default:''"`
	Notes      string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt  string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (EngineElectrical) TableName() string {
	return "engine_electricals"
}
