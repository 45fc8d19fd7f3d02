package enum

// Division classifies the business unit a job originates from. It drives
// the job-number prefix and which intake field template applies.
type Division string

const (
	DivisionNashville  Division = "HB - Nashville"
	DivisionReferral   Division = "Referral"
	DivisionLargeLoss  Division = "Large Loss"
	DivisionRecon      Division = "RECON"
	DivisionMitigation Division = "MIT"
)

// Code returns the short code used in job numbers for this division.
// Unknown divisions fall back to the generic code.
func (d Division) Code() string {
	switch d {
	case DivisionNashville:
		return "HBN"
	case DivisionReferral:
		return "REF"
	case DivisionLargeLoss:
		return "LL"
	case DivisionRecon:
		return "REC"
	case DivisionMitigation:
		return "MIT"
	default:
		return "GEN"
	}
}

// IsReferralTrack reports whether the division uses the referral/large-loss
// intake template instead of the standard loss template.
func (d Division) IsReferralTrack() bool {
	return d == DivisionReferral || d == DivisionLargeLoss
}
