package product

import "github.com/shopspring/decimal"

func price(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func discount(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// SampleWatches is the catalog the storefront ships with.
func SampleWatches() []ProductDTO {
	return []ProductDTO{
		{
			ID:               "1",
			Name:             "Submariner Date",
			Brand:            "Rolex",
			Price:            price(13150),
			Description:      "Oystersteel diver with a rotatable bezel, black dial and Oyster bracelet, in production since 1953.",
			ShortDescription: "The reference diving watch.",
			Images:           []string{"/images/watches/submariner-date.jpg"},
			Styles:           []string{"Dive", "Sports"},
			Featured:         true,
			Specifications: SpecificationDTO{
				Reference:     "126610LN",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "41 mm",
				Movement:      "Perpetual, mechanical, self-winding, Calibre 3235",
				DialColor:     "Black",
				StrapMaterial: "Stainless Steel",
			},
		},
		{
			ID:               "2",
			Name:             "Nautilus",
			Brand:            "Patek Philippe",
			Price:            price(35000),
			Description:      "Porthole-inspired sports watch with an embossed dial and integrated bracelet, designed by Gerald Genta.",
			ShortDescription: "The porthole sports watch.",
			Images:           []string{"/images/watches/nautilus.jpg"},
			Styles:           []string{"Dress", "Sports"},
			Featured:         true,
			Specifications: SpecificationDTO{
				Reference:     "5711/1A-010",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "40 mm",
				Movement:      "Self-winding mechanical, Caliber 26-330 S C",
				DialColor:     "Blue",
				StrapMaterial: "Stainless Steel",
			},
		},
		{
			ID:               "3",
			Name:             "Royal Oak",
			Brand:            "Audemars Piguet",
			Price:            price(29500),
			Description:      "Steel case with an octagonal bezel and exposed screws that redefined luxury watchmaking in 1972.",
			ShortDescription: "The octagonal bezel icon.",
			Images:           []string{"/images/watches/royal-oak.jpg"},
			Styles:           []string{"Dress", "Sports"},
			Featured:         true,
			Specifications: SpecificationDTO{
				Reference:     "15202ST.OO.1240ST.01",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "39 mm",
				Movement:      "Self-winding manufacture Calibre 2121",
				DialColor:     "Blue",
				StrapMaterial: "Stainless Steel",
			},
		},
		{
			ID:               "4",
			Name:             "Speedmaster Professional",
			Brand:            "Omega",
			Price:            price(6400),
			DiscountPrice:    discount(5900),
			Description:      "The Moonwatch: a racing chronograph from 1957 that went to the moon with Apollo 11.",
			ShortDescription: "The Moonwatch.",
			Images:           []string{"/images/watches/speedmaster-professional.jpg"},
			Styles:           []string{"Chronograph", "Sports"},
			Bestseller:       true,
			Specifications: SpecificationDTO{
				Reference:     "310.30.42.50.01.001",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "42 mm",
				Movement:      "Mechanical chronograph, Calibre 3861",
				DialColor:     "Black",
				StrapMaterial: "Stainless Steel",
			},
		},
		{
			ID:               "5",
			Name:             "Santos de Cartier",
			Brand:            "Cartier",
			Price:            price(7050),
			Description:      "Square case with exposed screws, first made in 1904 for the aviator Alberto Santos-Dumont.",
			ShortDescription: "The square aviator's watch.",
			Images:           []string{"/images/watches/santos-de-cartier.jpg"},
			Styles:           []string{"Dress", "Pilot"},
			NewArrival:       true,
			Specifications: SpecificationDTO{
				Reference:     "WSSA0018",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "39.8 mm",
				Movement:      "Automatic mechanical, Calibre 1847 MC",
				DialColor:     "Silver",
				StrapMaterial: "Stainless Steel",
			},
		},
		{
			ID:               "6",
			Name:             "Navitimer B01 Chronograph",
			Brand:            "Breitling",
			Price:            price(9250),
			Description:      "Aviation chronograph with a circular slide rule for flight calculations, trusted by pilots since 1952.",
			ShortDescription: "The pilot's flight computer.",
			Images:           []string{"/images/watches/navitimer-b01.jpg"},
			Styles:           []string{"Pilot", "Chronograph"},
			Specifications: SpecificationDTO{
				Reference:     "AB0127211B1P1",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "43 mm",
				Movement:      "Self-winding mechanical, Breitling Manufacture Calibre 01",
				DialColor:     "Black",
				StrapMaterial: "Leather",
			},
		},
		{
			ID:               "7",
			Name:             "Big Bang Unico",
			Brand:            "Hublot",
			Price:            price(21700),
			DiscountPrice:    discount(19500),
			Description:      "Skeleton dial over the in-house Unico flyback chronograph in a titanium porthole case.",
			ShortDescription: "Skeleton chronograph in titanium.",
			Images:           []string{"/images/watches/big-bang-unico.jpg"},
			Styles:           []string{"Skeleton", "Chronograph", "Sports"},
			Specifications: SpecificationDTO{
				Reference:     "411.NX.1170.RX",
				CaseMaterial:  "Titanium",
				CaseDiameter:  "45 mm",
				Movement:      "Self-winding Unico manufacture Calibre HUB1280",
				DialColor:     "Skeleton",
				StrapMaterial: "Titanium",
			},
		},
		{
			ID:               "8",
			Name:             "Portugieser Chronograph",
			Brand:            "IWC Schaffhausen",
			Price:            price(8100),
			Description:      "Clean dial with applied Arabic numerals and a slim bezel around a discreet chronograph.",
			ShortDescription: "The clean-dial chronograph.",
			Images:           []string{"/images/watches/portugieser-chronograph.jpg"},
			Styles:           []string{"Dress", "Chronograph"},
			Bestseller:       true,
			Specifications: SpecificationDTO{
				Reference:     "IW371616",
				CaseMaterial:  "Stainless Steel",
				CaseDiameter:  "41 mm",
				Movement:      "Self-winding, IWC manufacture Calibre 69355",
				DialColor:     "Blue",
				StrapMaterial: "Leather",
			},
		},
	}
}
