package repository

import (
	"shoptrack/internal/domain/asset"
	"shoptrack/internal/infrastructure/persistence/sqlite/model"
)

// toModel converts a domain record into its table row. The type switch
// is exhaustive over the closed record set; a nil return means a
// variant was added without a table mapping.
func toModel(rec asset.Record) any {
	switch r := rec.(type) {
	case asset.EngineSupply:
		return &model.EngineSupply{
			Serial: r.Serial, EngineType: r.EngineType, Model: r.Model,
			PrevSite: r.PrevSite, SupDate: r.SupDate, Supplier: r.Supplier,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineIssue:
		return &model.EngineIssue{
			Serial: r.Serial, CurrSite: r.CurrSite, Receiver: r.Receiver,
			Requester: r.Requester, IssueDate: r.IssueDate,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineRehab:
		return &model.EngineRehab{
			Serial: r.Serial, Rehabber: r.Rehabber, RehabType: r.RehabType,
			RehabDate: r.RehabDate, Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineCheck:
		return &model.EngineCheck{
			Serial: r.Serial, Inspector: r.Inspector, Description: r.Description,
			CheckDate: r.CheckDate, Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineUpload:
		return &model.EngineUpload{
			Serial: r.Serial, RehabUp: r.RehabUp, CheckUp: r.CheckUp,
			RehabUpDate: r.RehabUpDate, CheckUpDate: r.CheckUpDate,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineLathe:
		return &model.EngineLathe{
			Serial: r.Serial, Lathe: r.Lathe, LatheDate: r.LatheDate,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EnginePump:
		return &model.EnginePump{
			Serial: r.Serial, PumpSerial: r.PumpSerial, PumpRehab: r.PumpRehab,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.EngineElectrical:
		return &model.EngineElectrical{
			Serial: r.Serial, Kind: r.Kind, Starter: r.Starter,
			Alternator: r.Alternator, WorkDate: r.WorkDate,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.GeneratorSupply:
		return &model.GeneratorSupply{
			Code: r.Code, GenType: r.GenType, Model: r.Model,
			PrevSite: r.PrevSite, SupDate: r.SupDate, Supplier: r.Supplier,
			Vendor: r.Vendor, Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.GeneratorIssue:
		return &model.GeneratorIssue{
			Code: r.Code, IssueDate: r.IssueDate, Receiver: r.Receiver,
			Requester: r.Requester, CurrSite: r.CurrSite,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.GeneratorInspect:
		return &model.GeneratorInspect{
			Code: r.Code, Inspector: r.Inspector, ElecRehab: r.ElecRehab,
			RehabDate: r.RehabDate, RehabUp: r.RehabUp, CheckUp: r.CheckUp,
			Notes: r.Notes, CreatedAt: r.CreatedAt,
		}
	case asset.SparePart:
		return &model.SparePart{
			ItemKind: r.ItemKind, SerialOrCode: r.SerialOrCode,
			PartName: r.PartName, Qty: r.Qty, Condition: r.Condition,
			Model: r.Model, Notes: r.Notes, UsedAt: r.UsedAt,
			CreatedAt: r.CreatedAt,
		}
	default:
		return nil
	}
}

func engineSupplyFromModel(row model.EngineSupply) asset.EngineSupply {
	return asset.EngineSupply{
		Serial: row.Serial, EngineType: row.EngineType, Model: row.Model,
		PrevSite: row.PrevSite, SupDate: row.SupDate, Supplier: row.Supplier,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineIssueFromModel(row model.EngineIssue) asset.EngineIssue {
	return asset.EngineIssue{
		Serial: row.Serial, CurrSite: row.CurrSite, Receiver: row.Receiver,
		Requester: row.Requester, IssueDate: row.IssueDate,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineRehabFromModel(row model.EngineRehab) asset.EngineRehab {
	return asset.EngineRehab{
		Serial: row.Serial, Rehabber: row.Rehabber, RehabType: row.RehabType,
		RehabDate: row.RehabDate, Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineCheckFromModel(row model.EngineCheck) asset.EngineCheck {
	return asset.EngineCheck{
		Serial: row.Serial, Inspector: row.Inspector, Description: row.Description,
		CheckDate: row.CheckDate, Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineUploadFromModel(row model.EngineUpload) asset.EngineUpload {
	return asset.EngineUpload{
		Serial: row.Serial, RehabUp: row.RehabUp, CheckUp: row.CheckUp,
		RehabUpDate: row.RehabUpDate, CheckUpDate: row.CheckUpDate,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineLatheFromModel(row model.EngineLathe) asset.EngineLathe {
	return asset.EngineLathe{
		Serial: row.Serial, Lathe: row.Lathe, LatheDate: row.LatheDate,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func enginePumpFromModel(row model.EnginePump) asset.EnginePump {
	return asset.EnginePump{
		Serial: row.Serial, PumpSerial: row.PumpSerial, PumpRehab: row.PumpRehab,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func engineElectricalFromModel(row model.EngineElectrical) asset.EngineElectrical {
	return asset.EngineElectrical{
		Serial: row.Serial, Kind: row.Kind, Starter: row.Starter,
		Alternator: row.Alternator, WorkDate: row.WorkDate,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func generatorSupplyFromModel(row model.GeneratorSupply) asset.GeneratorSupply {
	return asset.GeneratorSupply{
		Code: row.Code, GenType: row.GenType, Model: row.Model,
		PrevSite: row.PrevSite, SupDate: row.SupDate, Supplier: row.Supplier,
		Vendor: row.Vendor, Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func generatorIssueFromModel(row model.GeneratorIssue) asset.GeneratorIssue {
	return asset.GeneratorIssue{
		Code: row.Code, IssueDate: row.IssueDate, Receiver: row.Receiver,
		Requester: row.Requester, CurrSite: row.CurrSite,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func generatorInspectFromModel(row model.GeneratorInspect) asset.GeneratorInspect {
	return asset.GeneratorInspect{
		Code: row.Code, Inspector: row.Inspector, ElecRehab: row.ElecRehab,
		RehabDate: row.RehabDate, RehabUp: row.RehabUp, CheckUp: row.CheckUp,
		Notes: row.Notes, CreatedAt: row.CreatedAt,
	}
}

func sparePartFromModel(row model.SparePart) asset.SparePart {
	return asset.SparePart{
		ItemKind: row.ItemKind, SerialOrCode: row.SerialOrCode,
		PartName: row.PartName, Qty: row.Qty, Condition: row.Condition,
		Model: row.Model, Notes: row.Notes, UsedAt: row.UsedAt,
		CreatedAt: row.CreatedAt,
	}
}
