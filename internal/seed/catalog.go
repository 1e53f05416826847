package seed

var (
	pumpBrands  = []string{"Kirloskar", "Texmo", "Crompton", "V-Guard", "Grundfos", "KSB"}
	motorBrands = []string{"Siemens", "ABB", "Bharat Bijlee", "Havells", "Crompton"}
	unitModels  = []string{"X-100", "Superflow", "Titan", "Max", "Pro-Series", "Eco"}

	horsepowers = []string{"0.5", "1.0", "1.5", "2.0", "5.0"}

	declinedReasons = []string{
		"Estimate too high",
		"Customer not reachable",
		"Change of mind",
		"Duplicate service request",
		"Other",
	}
	declinedNotes = "Customer decided not to proceed"

	organizationTypes = []string{"Company", "Apartments", "Dealers", "Electricals", "Other"}
	workerSkills      = []string{"Winding", "Fitting", "Testing", "Lathe Work", "General"}

	workDescriptions = []string{
		"Disassembly and Inspection",
		"Rewinding",
		"Bearing replacement",
		"Lathe machining",
		"Assembly and testing",
	}

	paymentModes = []string{"Cash", "UPI", "Card", "Bank Transfer"}
)

type catalogPart struct {
	name string
	unit string
	cost string
}

var partCatalog = []catalogPart{
	{"Copper Wire 24SWG", "Kg", "850.00"},
	{"Ball Bearing 6204", "Nos", "250.00"},
	{"Insulation Paper", "Kg", "150.00"},
	{"Varnish", "Ltr", "400.00"},
	{"Capacitor 50mfd", "Nos", "120.00"},
	{"Oil Seal", "Nos", "45.00"},
	{"Cooling Fan", "Nos", "180.00"},
}

const (
	documentTypeQuote  = "Quote"
	paymentTypeFinal   = "Final"
	phaseSingle        = "1-PHASE"
	phaseThree         = "3-PHASE"
	connectionNone     = "NONE"
	minWindingSWG      = 18
	maxWindingSWG      = 26
	minWindingTurns    = 40
	maxWindingTurns    = 120
	windingProbability = 0.5
)
