package tracking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"shoptrack/internal/domain/asset"
	"shoptrack/internal/errs"
	"shoptrack/internal/ports"
)

// SummaryRow is the flattened latest-per-category snapshot of one
// asset. Absent attributes stay empty strings so rows export directly
// as a table.
type SummaryRow struct {
	Kind string `json:"kind"`
	Key  string `json:"key"`

	SupplyType     string `json:"supply_type"`
	SupplyModel    string `json:"supply_model"`
	SupplySupplier string `json:"supply_supplier"`
	SupplyVendor   string `json:"supply_vendor,omitempty"`
	SupplyPrevSite string `json:"supply_prev_site"`
	SupplyDate     string `json:"supply_date"`

	IssueCurrentSite string `json:"issue_current_site"`
	IssueReceiver    string `json:"issue_receiver"`
	IssueRequester   string `json:"issue_requester"`
	IssueDate        string `json:"issue_date"`

	RehabBy   string `json:"rehab_by,omitempty"`
	RehabType string `json:"rehab_type,omitempty"`
	RehabDate string `json:"rehab_date,omitempty"`

	CheckInspector   string `json:"check_inspector,omitempty"`
	CheckDescription string `json:"check_description,omitempty"`
	CheckDate        string `json:"check_date,omitempty"`

	UploadRehab     string `json:"upload_rehab,omitempty"`
	UploadCheck     string `json:"upload_check,omitempty"`
	UploadRehabDate string `json:"upload_rehab_date,omitempty"`
	UploadCheckDate string `json:"upload_check_date,omitempty"`

	Lathe     string `json:"lathe,omitempty"`
	LatheDate string `json:"lathe_date,omitempty"`

	PumpSerial string `json:"pump_serial,omitempty"`
	PumpRehab  string `json:"pump_rehab,omitempty"`

	ElectKind       string `json:"elect_kind,omitempty"`
	ElectStarter    string `json:"elect_starter,omitempty"`
	ElectAlternator string `json:"elect_alternator,omitempty"`
	ElectDate       string `json:"elect_date,omitempty"`

	InspectInspector string `json:"inspect_inspector,omitempty"`
	InspectElecRehab string `json:"inspect_elec_rehab,omitempty"`
	InspectRehabDate string `json:"inspect_rehab_date,omitempty"`
	InspectRehabUp   string `json:"inspect_rehab_up,omitempty"`
	InspectCheckUp   string `json:"inspect_check_up,omitempty"`

	SpareLast string `json:"spare_last,omitempty"`
}

// Summary reduces the search fan-out to one flat row per matching
// asset: group rows by key, pick the latest record per category. Rows
// whose timestamp fails to parse never win latest-selection, though
// they still show up in the verbatim Search view.
func (s *Service) Summary(ctx context.Context, q string) ([]SummaryRow, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errs.Wrap(err, "check context")
	}
	if s.repo == nil {
		return nil, errors.New("asset repository is required")
	}

	history, err := s.repo.FetchByKey(ctx, strings.TrimSpace(q), ports.MatchSubstring)
	if err != nil {
		return nil, errs.Wrap(err, "fetch asset history")
	}
	return summarize(history), nil
}

type engineHistory struct {
	supplies    []asset.EngineSupply
	issues      []asset.EngineIssue
	rehabs      []asset.EngineRehab
	checks      []asset.EngineCheck
	uploads     []asset.EngineUpload
	lathes      []asset.EngineLathe
	pumps       []asset.EnginePump
	electricals []asset.EngineElectrical
	spares      []asset.SparePart
}

type generatorHistory struct {
	supplies []asset.GeneratorSupply
	issues   []asset.GeneratorIssue
	inspects []asset.GeneratorInspect
	spares   []asset.SparePart
}

func summarize(h ports.History) []SummaryRow {
	engines := map[string]*engineHistory{}
	engineAt := func(key string) *engineHistory {
		if eh, ok := engines[key]; ok {
			return eh
		}
		eh := &engineHistory{}
		engines[key] = eh
		return eh
	}
	generators := map[string]*generatorHistory{}
	generatorAt := func(key string) *generatorHistory {
		if gh, ok := generators[key]; ok {
			return gh
		}
		gh := &generatorHistory{}
		generators[key] = gh
		return gh
	}

	for _, r := range h.EngineSupplies {
		eh := engineAt(r.Serial)
		eh.supplies = append(eh.supplies, r)
	}
	for _, r := range h.EngineIssues {
		eh := engineAt(r.Serial)
		eh.issues = append(eh.issues, r)
	}
	for _, r := range h.EngineRehabs {
		eh := engineAt(r.Serial)
		eh.rehabs = append(eh.rehabs, r)
	}
	for _, r := range h.EngineChecks {
		eh := engineAt(r.Serial)
		eh.checks = append(eh.checks, r)
	}
	for _, r := range h.EngineUploads {
		eh := engineAt(r.Serial)
		eh.uploads = append(eh.uploads, r)
	}
	for _, r := range h.EngineLathes {
		eh := engineAt(r.Serial)
		eh.lathes = append(eh.lathes, r)
	}
	for _, r := range h.EnginePumps {
		eh := engineAt(r.Serial)
		eh.pumps = append(eh.pumps, r)
	}
	for _, r := range h.EngineElectricals {
		eh := engineAt(r.Serial)
		eh.electricals = append(eh.electricals, r)
	}
	for _, r := range h.GeneratorSupplies {
		gh := generatorAt(r.Code)
		gh.supplies = append(gh.supplies, r)
	}
	for _, r := range h.GeneratorIssues {
		gh := generatorAt(r.Code)
		gh.issues = append(gh.issues, r)
	}
	for _, r := range h.GeneratorInspects {
		gh := generatorAt(r.Code)
		gh.inspects = append(gh.inspects, r)
	}

	// Spare parts attach to whichever class already claims the key;
	// referential integrity across tables is by key string only.
	for _, sp := range h.SpareParts {
		if eh, ok := engines[sp.SerialOrCode]; ok {
			eh.spares = append(eh.spares, sp)
		}
		if gh, ok := generators[sp.SerialOrCode]; ok {
			gh.spares = append(gh.spares, sp)
		}
	}

	rows := make([]SummaryRow, 0, len(engines)+len(generators))
	for key, eh := range engines {
		rows = append(rows, engineSummaryRow(key, eh))
	}
	for key, gh := range generators {
		rows = append(rows, generatorSummaryRow(key, gh))
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Kind != rows[j].Kind {
			return rows[i].Kind < rows[j].Kind
		}
		return rows[i].Key < rows[j].Key
	})
	return rows
}

func engineSummaryRow(key string, eh *engineHistory) SummaryRow {
	row := SummaryRow{Kind: string(asset.ClassEngine), Key: key}

	if sup, ok := asset.Latest(eh.supplies,
		asset.EngineSupply.EventDate,
		func(r asset.EngineSupply) string { return r.CreatedAt }); ok {
		row.SupplyType = sup.EngineType
		row.SupplyModel = sup.Model
		row.SupplySupplier = sup.Supplier
		row.SupplyPrevSite = sup.PrevSite
		row.SupplyDate = sup.SupDate
	}
	if iss, ok := asset.Latest(eh.issues,
		asset.EngineIssue.EventDate,
		func(r asset.EngineIssue) string { return r.CreatedAt }); ok {
		row.IssueCurrentSite = iss.CurrSite
		row.IssueReceiver = iss.Receiver
		row.IssueRequester = iss.Requester
		row.IssueDate = iss.IssueDate
	}
	if reh, ok := asset.Latest(eh.rehabs,
		asset.EngineRehab.EventDate,
		func(r asset.EngineRehab) string { return r.CreatedAt }); ok {
		row.RehabBy = reh.Rehabber
		row.RehabType = reh.RehabType
		row.RehabDate = reh.RehabDate
	}
	if chk, ok := asset.Latest(eh.checks,
		asset.EngineCheck.EventDate,
		func(r asset.EngineCheck) string { return r.CreatedAt }); ok {
		row.CheckInspector = chk.Inspector
		row.CheckDescription = chk.Description
		row.CheckDate = chk.CheckDate
	}
	if up, ok := asset.Latest(eh.uploads,
		asset.EngineUpload.EventDate,
		func(r asset.EngineUpload) string { return r.CreatedAt }); ok {
		row.UploadRehab = up.RehabUp
		row.UploadCheck = up.CheckUp
		row.UploadRehabDate = up.RehabUpDate
		row.UploadCheckDate = up.CheckUpDate
	}
	if lat, ok := asset.Latest(eh.lathes,
		asset.EngineLathe.EventDate,
		func(r asset.EngineLathe) string { return r.CreatedAt }); ok {
		row.Lathe = lat.Lathe
		row.LatheDate = lat.LatheDate
	}
	if pmp, ok := asset.Latest(eh.pumps,
		asset.EnginePump.EventDate,
		func(r asset.EnginePump) string { return r.CreatedAt }); ok {
		row.PumpSerial = pmp.PumpSerial
		row.PumpRehab = pmp.PumpRehab
	}
	if elec, ok := asset.Latest(eh.electricals,
		asset.EngineElectrical.EventDate,
		func(r asset.EngineElectrical) string { return r.CreatedAt }); ok {
		row.ElectKind = elec.Kind
		row.ElectStarter = elec.Starter
		row.ElectAlternator = elec.Alternator
		row.ElectDate = elec.WorkDate
	}
	row.SpareLast = lastSpareLabel(eh.spares)
	return row
}

func generatorSummaryRow(key string, gh *generatorHistory) SummaryRow {
	row := SummaryRow{Kind: string(asset.ClassGenerator), Key: key}

	if sup, ok := asset.Latest(gh.supplies,
		asset.GeneratorSupply.EventDate,
		func(r asset.GeneratorSupply) string { return r.CreatedAt }); ok {
		row.SupplyType = sup.GenType
		row.SupplyModel = sup.Model
		row.SupplySupplier = sup.Supplier
		row.SupplyVendor = sup.Vendor
		row.SupplyPrevSite = sup.PrevSite
		row.SupplyDate = sup.SupDate
	}
	if iss, ok := asset.Latest(gh.issues,
		asset.GeneratorIssue.EventDate,
		func(r asset.GeneratorIssue) string { return r.CreatedAt }); ok {
		row.IssueCurrentSite = iss.CurrSite
		row.IssueReceiver = iss.Receiver
		row.IssueRequester = iss.Requester
		row.IssueDate = iss.IssueDate
	}
	if ins, ok := asset.Latest(gh.inspects,
		asset.GeneratorInspect.EventDate,
		func(r asset.GeneratorInspect) string { return r.CreatedAt }); ok {
		row.InspectInspector = ins.Inspector
		row.InspectElecRehab = ins.ElecRehab
		row.InspectRehabDate = ins.RehabDate
		row.InspectRehabUp = ins.RehabUp
		row.InspectCheckUp = ins.CheckUp
	}
	row.SpareLast = lastSpareLabel(gh.spares)
	return row
}

func lastSpareLabel(spares []asset.SparePart) string {
	sp, ok := asset.Latest(spares,
		asset.SparePart.EventDate,
		func(r asset.SparePart) string { return r.CreatedAt })
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s x %d", sp.PartName, sp.Qty)
}
