package models

// The legacy schema stores booleans as "Y"/"N" varchar sentinels. The typed
// flags below keep that wire/storage format while giving call sites an
// exhaustive two-valued enum instead of raw strings.

// DeleteFlag marks a row as logically removed. Deleted rows are excluded from
// every list/read path but never physically removed.
type DeleteFlag string

const (
	NotDeleted DeleteFlag = "N"
	Deleted    DeleteFlag = "Y"
)

func (f DeleteFlag) Valid() bool {
	return f == NotDeleted || f == Deleted
}

// YesNo is the sentinel used for display/permission toggles (isActive,
// visibility, permission objects).
type YesNo string

const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

func (v YesNo) Bool() bool { return v == Yes }

func YesNoFrom(b bool) YesNo {
	if b {
		return Yes
	}
	return No
}
