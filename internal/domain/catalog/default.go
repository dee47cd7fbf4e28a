package catalog

var diveParams = []Param{
	{Key: "diver2026rate", Label: "Divers"},
	{Key: "diver", Label: "Divers (Local Rate)", Local: true},
}

var diveAddOns = []AddOnRule{
	{Item: RentalGear, Param: "fullrentalgear", Source: FromRental},
	{Item: MarineParkFee, Param: "diver2023rate", Source: FromGuests},
}

// Default returns the operator's deployed activity catalog.
func Default() *Catalog {
	c, err := New(
		Entry{
			ID:           Advanced2Tank,
			Kind:         KindPrimary,
			Name:         "Advanced 2-Tank Dive",
			ShortDesc:    "Deep Walls & Pinnacles (Up to 110 ft / 33 m), advanced divers only",
			PickupTime:   "8:30 AM pickup",
			Requirement:  "Advanced Open Water & 20 dives, or Open Water & 50 dives",
			CertRequired: true,
			Alternative:  AfternoonSnorkel,
			Params:       diveParams,
			AddOns:       diveAddOns,
		},
		Entry{
			ID:           Classic2Tank,
			Kind:         KindPrimary,
			Name:         "Classic 2-Tank Dive",
			ShortDesc:    "Scenic Reefs (Max 70 ft / 21 m), all certified divers welcome",
			PickupTime:   "10:00 AM pickup",
			Requirement:  "Open Water or Scuba Diver (with private guide)",
			CertRequired: true,
			Alternative:  AfternoonSnorkel,
			Params:       diveParams,
			AddOns:       diveAddOns,
		},
		Entry{
			ID:           AfternoonDive,
			Kind:         KindPrimary,
			Name:         "Afternoon 1-Tank Dive",
			ShortDesc:    "Relaxed Reef Dive (Max 70 ft / 21 m), great add-on or lighter day option",
			PickupTime:   "12:30 PM pickup",
			Requirement:  "Open Water or Scuba Diver (with private guide)",
			CertRequired: true,
			Alternative:  AfternoonSnorkel,
			Params:       diveParams,
			AddOns:       diveAddOns,
		},
		Entry{
			ID:          AfternoonSnorkel,
			Kind:        KindPrimary,
			Name:        "Afternoon Snorkel",
			ShortDesc:   "No certification needed, explore Saba's reefs",
			PickupTime:  "12:30 PM pickup",
			Requirement: "Comfortable swimmer",
			Params: []Param{
				{Key: "snorkeler", Label: "Snorkelers"},
				{Key: "snorkelerlocal", Label: "Snorkelers (Local Rate)", Local: true},
			},
			AddOns: []AddOnRule{
				{Item: MarineParkFee, Param: "snorkeler", Source: FromGuests},
			},
		},
		Entry{
			ID:         SunsetCruise,
			Kind:       KindPrimary,
			Name:       "Sunset Cruise",
			ShortDesc:  "Evening cruise around Saba (minimum 8 guests)",
			PickupTime: "Evening",
			Params: []Param{
				{Key: "adult", Label: "Adults"},
				{Key: "youngadult1417", Label: "Young Adults (14-17)"},
				{Key: "child513", Label: "Children (5-13)"},
			},
			MinTotalGuests: 8,
		},
		Entry{
			ID:         RentalGear,
			Kind:       KindAddOn,
			Name:       "Full Rental Gear",
			ShortDesc:  "BCD, regulator, wetsuit, mask, fins, dive computer, added per diver per day",
			PickupTime: "Same as dive",
			Params: []Param{
				{Key: "fullrentalgear", Label: "Full Rental Gear"},
			},
		},
		Entry{
			ID:         MarineParkFee,
			Kind:       KindAddOn,
			Name:       "Marine Park Fee",
			ShortDesc:  "$3 per dive supports Saba's marine park, $1 per dive supports the Hyperbaric Chamber",
			PickupTime: "Same as dive",
			Params: []Param{
				{Key: "diver2023rate", Label: "Diver"},
				{Key: "snorkeler", Label: "Snorkeler"},
			},
		},
	)
	if err != nil {
		panic("invalid default catalog: " + err.Error())
	}
	return c
}
