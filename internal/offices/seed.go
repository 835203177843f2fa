package offices

// seedOffices returns the built-in office directory. Real deployments would
// load this from a registry service.
func seedOffices() []Office {
	return []Office{
		{Name: "Kenyatta National Hospital", Type: "Hospital", City: "Nairobi", Address: "Hospital Road, Nairobi", Lat: -1.3048, Lon: 36.8154},
		{Name: "Mama Lucy Kibaki Hospital", Type: "Hospital", City: "Nairobi", Address: "Kangundo Road, Nairobi", Lat: -1.3045, Lon: 36.9012},
		{Name: "Nairobi County Health Department", Type: "Health Center", City: "Nairobi", Address: "City Hall, Nairobi", Lat: -1.2833, Lon: 36.8167},

		{Name: "Lagos University Teaching Hospital (LUTH)", Type: "Hospital", City: "Lagos", Address: "Idi-Araba, Lagos", Lat: 6.5244, Lon: 3.3892},
		{Name: "Lagos State Primary Health Care Board", Type: "Health Center", City: "Lagos", Address: "Ikeja, Lagos", Lat: 6.5244, Lon: 3.3792},
		{Name: "Maternal and Child Centre", Type: "Clinic", City: "Lagos", Address: "Amuwo Odofin, Lagos", Lat: 6.4541, Lon: 3.3947},

		{Name: "Kasr Al Ainy Hospital", Type: "Hospital", City: "Cairo", Address: "Manial, Cairo", Lat: 30.0318, Lon: 31.2266},
		{Name: "Ain Shams University Hospital", Type: "Hospital", City: "Cairo", Address: "Abbaseya, Cairo", Lat: 30.0771, Lon: 31.2859},
		{Name: "Ministry of Health and Population", Type: "Health Center", City: "Cairo", Address: "Cairo Governorate 11511, Egypt", Lat: 30.0444, Lon: 31.2357},

		{Name: "Chris Hani Baragwanath Hospital", Type: "Hospital", City: "Johannesburg", Address: "Soweto, Johannesburg", Lat: -26.2485, Lon: 27.9083},
		{Name: "Charlotte Maxeke Hospital", Type: "Hospital", City: "Johannesburg", Address: "Parktown, Johannesburg", Lat: -26.1876, Lon: 28.0444},
		{Name: "South African Department of Health", Type: "Health Center", City: "Johannesburg", Address: "Pretoria, South Africa", Lat: -25.7449, Lon: 28.1878},
	}
}
