package store

// Collection names, one per entity. Kept lowercase to stay compatible with
// data written by earlier revisions of the service.
const (
	CollectionUsers          = "appuser"
	CollectionSOSSettings    = "sossetting"
	CollectionSOSEvents      = "sos_event"
	CollectionFamilyProfiles = "familyprofile"
	CollectionBloodRequests  = "bloodrequest"
	CollectionNotices        = "healthnotice"
	CollectionOrders         = "medicineorder"
	CollectionHospitals      = "hospital"
	CollectionDoctors        = "doctor"
	CollectionBookings       = "booking"
	CollectionTokenFeeds     = "tokenfeed"
)
