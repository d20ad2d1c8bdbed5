package checkout

import "sort"

// EgyptianCities is the list of deliverable governorates, kept sorted for
// display in the city selector.
var EgyptianCities = []string{
	"Alexandria",
	"Aswan",
	"Asyut",
	"Beheira",
	"Beni Suef",
	"Cairo",
	"Dakahlia",
	"Damietta",
	"Faiyum",
	"Gharbia",
	"Giza",
	"Ismailia",
	"Kafr El Sheikh",
	"Luxor",
	"Matruh",
	"Minya",
	"Monufia",
	"New Valley",
	"North Sinai",
	"Port Said",
	"Qalyubia",
	"Qena",
	"Red Sea",
	"Sharqia",
	"Sohag",
	"South Sinai",
	"Suez",
}

func ValidCity(city string) bool {
	i := sort.SearchStrings(EgyptianCities, city)
	return i < len(EgyptianCities) && EgyptianCities[i] == city
}
