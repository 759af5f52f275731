package shelter

// CuratedEntry is a hand-maintained referral service pinned relative to the destination.
type CuratedEntry struct {
	Name      string
	Address   string
	Phone     string
	ADA       bool
	Note      string
	LatOffset float64
	LonOffset float64
}

// CuratedTable maps a category to its referral entries.
type CuratedTable map[string][]CuratedEntry

// DefaultCurated returns the national hotline and referral table. Hospital / Medical has no
// curated entries. The returned table is shared and must not be modified.
func DefaultCurated() CuratedTable {
	return curated
}

//nolint:gochecknoglobals // static reference table
var curated = CuratedTable{
	CategoryGeneral: {
		{
			Name:    "Red Cross Shelter (local chapter)",
			Address: "Contact local Red Cross: 1-800-RED-CROSS",
			Phone:   "1-800-733-2767",
			ADA:     true,
			Note: "Red Cross operates temporary shelters within 24 h of a declared emergency. " +
				"Call to confirm nearest open location.",
		},
		{
			Name:    "FEMA / County Emergency Shelter",
			Address: "Contact county emergency management or dial 211",
			Phone:   "211",
			ADA:     true,
			Note: "County-run shelters open automatically when an evacuation order is issued. " +
				"211 connects to local emergency services nationwide.",
		},
	},
	CategoryWomenDV: {
		{
			Name:    "National DV Hotline: Shelter Referral",
			Address: "Referral only: call or text for nearest shelter",
			Phone:   "1-800-799-7233",
			ADA:     true,
			Note: "The National Domestic Violence Hotline can connect you to the nearest safe, " +
				"confidential shelter. Text START to 88788.",
		},
	},
	CategoryElderly: {
		{
			Name:    "Area Agency on Aging: Emergency Placement",
			Address: "Contact your local AAA for nearest elder shelter",
			Phone:   "eldercare.acl.gov / 1-800-677-1116",
			ADA:     true,
			Note: "The Eldercare Locator links to local Area Agencies on Aging who coordinate " +
				"emergency placement for seniors.",
		},
	},
	CategoryDisabled: {
		{
			Name:    "ADA / Disability-Specific Shelter Referral",
			Address: "Contact local emergency management",
			Phone:   "211",
			ADA:     true,
			Note: "Most county emergency shelters are ADA-compliant. Call 211 and specify mobility " +
				"or accessibility needs to be matched to the right facility.",
		},
	},
	CategoryMental: {
		{
			Name:    "988 Suicide & Crisis Lifeline: Shelter Referral",
			Address: "Call or text 988 for crisis support and shelter help",
			Phone:   "988",
			ADA:     true,
			Note: "988 counsellors can arrange crisis-safe shelter placement and coordinate with " +
				"local mental-health agencies during emergencies.",
		},
	},
	CategoryVeterans: {
		{
			Name:    "VA Emergency / Homeless Veteran Services",
			Address: "Contact nearest VA Medical Center",
			Phone:   "1-800-273-8255 (Veterans Crisis Line)",
			ADA:     true,
			Note: "The VA operates emergency shelters for veterans through its Homeless Veteran " +
				"programmes. The Veterans Crisis Line also helps locate shelter.",
		},
	},
	CategoryFamilies: {
		{
			Name:    "211 Family-Shelter Referral",
			Address: "Dial 211 and request family shelter",
			Phone:   "211",
			ADA:     true,
			Note: "Many emergency shelters have dedicated family wings with cots, meals and childcare. " +
				"211 can confirm which facilities are open and have family capacity.",
		},
	},
	CategoryPets: {
		{
			Name:    "ASPCA / Local Animal Rescue: Pet-Friendly Shelter Info",
			Address: "Contact local animal rescue or dial 211",
			Phone:   "211",
			ADA:     false,
			Note: "Not all emergency shelters accept pets. 211 and local animal rescues keep lists " +
				"of pet-friendly evacuation sites. Bring carriers, food and records.",
		},
	},
}
