package events

const (
	SubjectJourneyUpdated = "gigly.journey.updated"

	StreamName   = "GIGLY_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectOfferDecided(offerID string) string { return "gigly.offer." + offerID + ".decided" }
