package persona

// Column names exposed by the segments projection. They match the warehouse
// schema so the frontend can address columns by their stable names.
const (
	ColumnAgeGroupProfile    = "persona_age_group_profile"
	ColumnSegmentDescription = "persona_segment_description"
)

// SegmentRow is one persona segment row from the warehouse.
type SegmentRow struct {
	AgeGroupProfile    string
	SegmentDescription string
}
