package domain

// Driver is a delivery agent eligible for assignment at dispatch.
type Driver struct {
	Name            string `json:"name"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	CurrentLocation string `json:"currentLocation,omitempty"`
}

// DefaultRoster returns the fixed set of candidate delivery drivers.
func DefaultRoster() []Driver {
	return []Driver{
		{
			Name:            "Amit Verma",
			Phone:           "+91 98765 43210",
			Email:           "amit.verma@fuelmate.com",
			CurrentLocation: "Adajan, Surat",
		},
		{
			Name:            "Rajesh Kumar",
			Phone:           "+91 87654 32109",
			Email:           "rajesh.kumar@fuelmate.com",
			CurrentLocation: "City Light, Surat",
		},
		{
			Name:            "Priya Patel",
			Phone:           "+91 76543 21098",
			Email:           "priya.patel@fuelmate.com",
			CurrentLocation: "Vesu, Surat",
		},
	}
}
