package rule

import "errors"

var ErrUnknownSheetType = errors.New("unknown sheet type")

// SheetType determines how a sheet's windows are interpreted.
type SheetType string

const (
	TypeTimeBased       SheetType = "TIME_BASED"
	TypeDateBased       SheetType = "DATE_BASED"
	TypeEventBased      SheetType = "EVENT_BASED"
	TypeDurationBased   SheetType = "DURATION_BASED"
	TypeSurgeMultiplier SheetType = "SURGE_MULTIPLIER"
)

// ParseSheetType accepts the legacy TIMING_BASED alias for TIME_BASED.
func ParseSheetType(s string) (SheetType, error) {
	switch SheetType(s) {
	case TypeTimeBased, TypeDateBased, TypeEventBased, TypeDurationBased, TypeSurgeMultiplier:
		return SheetType(s), nil
	}
	if s == "TIMING_BASED" {
		return TypeTimeBased, nil
	}
	return "", ErrUnknownSheetType
}

func (t SheetType) String() string {
	return string(t)
}

// Kind separates price sheets from capacity sheets. The engines never see
// it; callers load one kind per resolution.
type Kind string

const (
	KindPrice    Kind = "PRICE"
	KindCapacity Kind = "CAPACITY"
)

func (k Kind) IsValid() bool {
	return k == KindPrice || k == KindCapacity
}

// Source records which kind of source decided an hour's value.
type Source string

const (
	SourceSheet         Source = "SHEET"
	SourceSurge         Source = "SURGE"
	SourceOverride      Source = "OVERRIDE"
	SourceLevelDefault  Source = "LEVEL_DEFAULT"
	SourceSystemDefault Source = "SYSTEM_DEFAULT"
)
