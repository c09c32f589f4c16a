package model

type GeneratorSupply struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Code      string `gorm:"column:code;type:text;not null;index"`
	GenType   string `gorm:"column:gen_type;type:text;not null;default:''"`
	Model     string `gorm:"column:model;type:text;not null;default:''"`
	PrevSite  string `gorm:"column:prev_site;type:text;not null;default:''"`
	SupDate   string `gorm:"column:sup_date;type:text;not null;default:''"`
	Supplier  string `gorm:"column:supplier;type:text;not null;default:''"`
	Vendor    string `gorm:"column:vendor;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (GeneratorSupply) TableName() string {
	return "generator_supplies"
}

type GeneratorIssue struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Code      string `gorm:"column:code;type:text;not null;index"`
	IssueDate string `gorm:"column:issue_date;type:text;not null;default:''"`
	Receiver  string `gorm:"column:receiver;type:text;not null;default:''"`
	Requester string `gorm:"column:requester;type:text;not null;default:''"`
	CurrSite  string `gorm:"column:curr_site;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (GeneratorIssue) TableName() string {
	return "generator_issues"
}

type GeneratorInspect struct {
	ID        uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	Code      string `gorm:"column:code;type:text;not null;index"`
	Inspector string `gorm:"column:inspector;type:text;not null;default:''"`
	ElecRehab string `gorm:"column:elec_rehab;type:text;not null;default:''"`
	RehabDate string `gorm:"column:rehab_date;type:text;not null;default:''"`
	RehabUp   string `gorm:"column:rehab_up;type:text;not null;default:''"`
	CheckUp   string `gorm:"column:check_up;type:text;not null;default:''"`
	Notes     string `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (GeneratorInspect) TableName() string {
	return "generator_inspects"
}
