package model

type SparePart struct {
	ID           uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	ItemKind     string `gorm:"column:item_kind;type:text;not null;default:''"`
	SerialOrCode string `gorm:"column:serial_or_code;type:text;not null;index"`
	PartName     string `gorm:"column:part_name;type:text;not null;default:''"`
	Qty          int    `gorm:"column:qty;not null;default:0"`
	Condition    string `gorm:"column:condition;type:text;not null;default:''"`
	Model        string `gorm:"column:model;type:text;not null;default:''"`
	Notes        string `gorm:"column:notes;type:text;not null;default:''"`
	UsedAt       string `gorm:"column:used_at;type:text;not null;default:''"`
	CreatedAt    string `gorm:"column:created_at;type:text;not null;default:''"`
}

func (SparePart) TableName() string {
	return "spare_parts"
}
