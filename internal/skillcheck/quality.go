package skillcheck

// QualityTier is a discrete rank derived from a skill-check margin
type QualityTier int

const (
	QualityPoor QualityTier = iota
	QualityNormal
	QualityFine
	QualityExceptional
	QualityMasterwork
)

var qualityNames = [...]string{
	QualityPoor:        "poor",
	QualityNormal:      "normal",
	QualityFine:        "fine",
	QualityExceptional: "exceptional",
	QualityMasterwork:  "masterwork",
}

func (q QualityTier) String() string {
	if q < 0 || int(q) >= len(qualityNames) {
		return "unknown"
	}
	return qualityNames[q]
}

// TierFor maps a quality margin to its tier. Negative margins are Poor.
func TierFor(margin int) QualityTier {
	switch {
	case margin < PoorBelow:
		return QualityPoor
	case margin < NormalBelow:
		return QualityNormal
	case margin < FineBelow:
		return QualityFine
	case margin < ExceptionalBelow:
		return QualityExceptional
	default:
		return QualityMasterwork
	}
}
