package features

// Feature keys, in the fixed order used for vector comparison. Any two
// vectors that are compared must share the same schema and key order.
const (
	KeyAvgIndelLen       = "avg_indel_len"
	KeyAlignmentLen      = "alignment_len"
	KeyMSAMaxLen         = "msa_max_len"
	KeyMSAMinLen         = "msa_min_len"
	KeyTotalIndels       = "total_num_of_indels"
	KeyAvgUniqueIndelLen = "avg_unique_indel_len"
	KeyTotalUniqueIndels = "total_num_of_unique_indels"
	KeyNumPatterns       = "num_patterns"
	KeyMaxPatternWeight  = "max_pattern_weight"
	KeyAvgPatternWeight  = "avg_pattern_weight"
	KeyGapProportion     = "gap_proportion"
)

// BaseKeys is the base feature schema.
var BaseKeys = []string{
	KeyAvgIndelLen,
	KeyAlignmentLen,
	KeyMSAMaxLen,
	KeyMSAMinLen,
	KeyTotalIndels,
	"num_of_indels_of_len_one",
	"num_of_indels_of_len_two",
	"num_of_indels_of_len_three",
	"num_of_indels_of_len_at_least_four",
	KeyAvgUniqueIndelLen,
	KeyTotalUniqueIndels,
	"num_of_indels_of_len_one_in_one_pos",
	"num_of_indels_of_len_one_in_two_pos",
	"num_of_indels_of_len_one_in_n_minus_1_pos",
	"num_of_indels_of_len_two_in_one_pos",
	"num_of_indels_of_len_two_in_two_pos",
	"num_of_indels_of_len_two_in_n_minus_1_pos",
	"num_of_indels_of_len_three_in_one_pos",
	"num_of_indels_of_len_three_in_two_pos",
	"num_of_indels_of_len_three_in_n_minus_1_pos",
	"num_of_indels_of_len_at_least_four_in_one_pos",
	"num_of_indels_of_len_at_least_four_in_two_pos",
	"num_of_indels_of_len_at_least_four_in_n_minus_1_pos",
	"num_of_msa_pos_with_0_gaps",
	"num_of_msa_pos_with_1_gaps",
	"num_of_msa_pos_with_2_gaps",
	"num_of_msa_pos_with_n_minus_1_gaps",
}

// ExtendedKeys is the base schema plus the column pattern statistics.
var ExtendedKeys = append(append([]string{}, BaseKeys...),
	KeyNumPatterns,
	KeyMaxPatternWeight,
	KeyAvgPatternWeight,
)

// BlindKeys is the coarse 3-statistic schema used when no reference
// alignment is available.
var BlindKeys = []string{
	KeyAlignmentLen,
	KeyNumPatterns,
	KeyGapProportion,
}

// Schema identifies which key list a vector was built against.
type Schema int

const (
	// SchemaBase is the 27-key indel and gap statistics schema.
	SchemaBase Schema = iota
	// SchemaExtended adds the 3 pattern statistics.
	SchemaExtended
	// SchemaBlind is the coarse 3-statistic schema.
	SchemaBlind
)

// Keys returns the ordered key list for the schema.
func (s Schema) Keys() []string {
	switch s {
	case SchemaExtended:
		return ExtendedKeys
	case SchemaBlind:
		return BlindKeys
	default:
		return BaseKeys
	}
}

// Vector is a fixed-schema numeric summary of one alignment. Values are
// ordered according to Schema.Keys. NumTaxa carries the sequence count of
// the source alignment; it is needed for some distance normalizations.
type Vector struct {
	Schema  Schema
	Values  []float64
	NumTaxa int
}

// Get returns the value stored under key, or 0 if the key is not part of
// the vector's schema.
func (v *Vector) Get(key string) float64 {
	for i, k := range v.Schema.Keys() {
		if k == key {
			return v.Values[i]
		}
	}
	return 0
}

// Len returns the number of dimensions.
func (v *Vector) Len() int {
	return len(v.Values)
}
