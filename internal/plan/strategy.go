package plan

// Strategy identifies how a single field is read or written, mirroring the
// teacher's format.EncodingType: a small closed enum with a String method
// rather than an open interface hierarchy.
type Strategy uint8

const (
	// StrategyPlain reads/writes the field with its type's self-tagged
	// protocol (Decoder/Encoder, or the matching primitive codec).
	StrategyPlain Strategy = iota + 1
	// StrategyBits reads/writes an N-bit integer (bits=N).
	StrategyBits
	// StrategyFlexibleArray reads elements until end of stream; must be the
	// last field in a record.
	StrategyFlexibleArray
	// StrategyExternalTag decodes with a tag computed from a prior field
	// (tag=Expr).
	StrategyExternalTag
	// StrategyPrependedTag decodes a tag value first, then the field
	// untagged; on encode, writes the tag's write-value expression first
	// (ptag(type:T,value=Expr)).
	StrategyPrependedTag
)

func (s Strategy) String() string {
	switch s {
	case StrategyPlain:
		return "Plain"
	case StrategyBits:
		return "Bits"
	case StrategyFlexibleArray:
		return "FlexibleArray"
	case StrategyExternalTag:
		return "ExternalTag"
	case StrategyPrependedTag:
		return "PrependedTag"
	default:
		return "Unknown"
	}
}
