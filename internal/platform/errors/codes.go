// Package errors provides structured error handling with i18n support.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Die errors
	CodeDieInvalidFaceCount   Code = "DIE_INVALID_FACE_COUNT"
	CodeDieNonIntegerFace     Code = "DIE_NON_INTEGER_FACE"
	CodeDieInvalidFace        Code = "DIE_INVALID_FACE"
	CodeDieIndexOutOfRange    Code = "DIE_INDEX_OUT_OF_RANGE"
	CodeDiceTooFew            Code = "DICE_TOO_FEW"
	CodeDiceInvalidAtPosition Code = "DICE_INVALID_AT_POSITION"

	// Random errors
	CodeRandomInvalidRange Code = "RANDOM_INVALID_RANGE"
	CodeRandomEntropy      Code = "RANDOM_ENTROPY_UNAVAILABLE"

	// Exchange errors
	CodeExchangeAlreadyCommitted Code = "EXCHANGE_ALREADY_COMMITTED"
	CodeExchangeNotCommitted     Code = "EXCHANGE_NOT_COMMITTED"
	CodeExchangeAlreadyRevealed  Code = "EXCHANGE_ALREADY_REVEALED"
	CodeExchangeChoiceOutOfRange Code = "EXCHANGE_CHOICE_OUT_OF_RANGE"

	// Verification errors
	CodeCommitmentMismatch   Code = "COMMITMENT_MISMATCH"
	CodeCommitmentInvalidKey Code = "COMMITMENT_INVALID_KEY"
)

// Kind groups codes by how callers are expected to react to them.
type Kind int

const (
	// KindInternal covers failures the caller cannot fix.
	KindInternal Kind = iota
	// KindValidation is bad input: surfaced immediately, never retried.
	KindValidation
	// KindProtocolState is an out-of-order call; fatal to the instance.
	KindProtocolState
	// KindRange is a value outside declared bounds; the caller may re-prompt.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindProtocolState:
		return "protocol state"
	case KindRange:
		return "range"
	default:
		return "internal"
	}
}

// Codes lists every known code except CodeUnknown.
func Codes() []Code {
	return []Code{
		CodeDieInvalidFaceCount,
		CodeDieNonIntegerFace,
		CodeDieInvalidFace,
		CodeDieIndexOutOfRange,
		CodeDiceTooFew,
		CodeDiceInvalidAtPosition,
		CodeRandomInvalidRange,
		CodeRandomEntropy,
		CodeExchangeAlreadyCommitted,
		CodeExchangeNotCommitted,
		CodeExchangeAlreadyRevealed,
		CodeExchangeChoiceOutOfRange,
		CodeCommitmentMismatch,
		CodeCommitmentInvalidKey,
	}
}

// Kind maps domain codes to their error kind.
func (c Code) Kind() Kind {
	switch c {
	// Validation - bad die shape or values, bad range arguments
	case CodeDieInvalidFaceCount,
		CodeDieNonIntegerFace,
		CodeDieInvalidFace,
		CodeDiceTooFew,
		CodeDiceInvalidAtPosition,
		CodeRandomInvalidRange,
		CodeCommitmentInvalidKey:
		return KindValidation

	// ProtocolState - commit/reveal out of order or repeated
	case CodeExchangeAlreadyCommitted,
		CodeExchangeNotCommitted,
		CodeExchangeAlreadyRevealed:
		return KindProtocolState

	// Range - value outside declared bounds
	case CodeExchangeChoiceOutOfRange,
		CodeDieIndexOutOfRange:
		return KindRange

	default:
		return KindInternal
	}
}
