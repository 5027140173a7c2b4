package config

import "strings"

// Location is a GATT namespace descriptor: an ordinal 0x0001-0x00FF or one
// of the named positions starting at 0x0100.
type Location uint16

const (
	LocationUnknown Location = 0x0000

	LocationFront         Location = 0x0100
	LocationBack          Location = 0x0101
	LocationTop           Location = 0x0102
	LocationBottom        Location = 0x0103
	LocationUpper         Location = 0x0104
	LocationLower         Location = 0x0105
	LocationMain          Location = 0x0106
	LocationBackup        Location = 0x0107
	LocationAuxiliary     Location = 0x0108
	LocationSupplementary Location = 0x0109
	LocationFlash         Location = 0x010A
	LocationInside        Location = 0x010B
	LocationOutside       Location = 0x010C
	LocationLeft          Location = 0x010D
	LocationRight         Location = 0x010E
	LocationInternal      Location = 0x010F
	LocationExternal      Location = 0x0110
)

var positionNames = [...]string{
	"FRONT", "BACK", "TOP", "BOTTOM", "UPPER", "LOWER", "MAIN", "BACKUP",
	"AUXILIARY", "SUPPLEMENTARY", "FLASH", "INSIDE", "OUTSIDE", "LEFT",
	"RIGHT", "INTERNAL", "EXTERNAL",
}

var (
	unitOrdinals = [...]string{
		"", "FIRST", "SECOND", "THIRD", "FOURTH", "FIFTH", "SIXTH", "SEVENTH",
		"EIGHTH", "NINTH", "TENTH", "ELEVENTH", "TWELVETH", "THIRTEENTH",
		"FOURTEENTH", "FIFTEENTH", "SIXTEENTH", "SEVENTEENTH", "EIGHTEENTH",
		"NINETEENTH",
	}
	tensCardinals = [...]string{
		"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY",
		"EIGHTY", "NINETY",
	}
	tensOrdinals = [...]string{
		"", "", "TWENTIETH", "THIRTIETH", "FORTIETH", "FIFTIETH", "SIXTIETH",
		"SEVENTIETH", "EIGHTIETH", "NINETIETH",
	}
	hundreds = [...]string{"", "ONE_HUNDRED", "TWO_HUNDRED"}
)

// ordinal spells n (1..255) as an upper snake case ordinal.
func ordinal(n int) string {
	h, rest := n/100, n%100
	var below string
	switch {
	case rest == 0:
	case rest < 20:
		below = unitOrdinals[rest]
	case rest%10 == 0:
		below = tensOrdinals[rest/10]
	default:
		below = tensCardinals[rest/10] + "_" + unitOrdinals[rest%10]
	}

	switch {
	case h == 0:
		return below
	case rest == 0:
		return hundreds[h] + "TH"
	case rest >= 20 && rest%10 == 0:
		return hundreds[h] + "_" + below
	default:
		return strings.Join([]string{hundreds[h], "AND", below}, "_")
	}
}

func (l Location) String() string {
	switch {
	case l == LocationUnknown:
		return "UNKNOWN"
	case l <= 0xFF:
		return ordinal(int(l))
	case l >= LocationFront && l <= LocationExternal:
		return positionNames[l-LocationFront]
	}
	return "RFU"
}

// IsValid reports whether l is a defined descriptor.
func (l Location) IsValid() bool {
	return l <= LocationExternal
}

// Locations returns every defined descriptor in ascending order.
func Locations() []Location {
	out := make([]Location, 0, 0x100+len(positionNames))
	for l := LocationUnknown; l <= LocationExternal; l++ {
		if l > 0xFF && l < LocationFront {
			continue
		}
		out = append(out, l)
	}
	return out
}
