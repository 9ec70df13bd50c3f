package catalog

import (
	"fmt"
	"regexp"

	"airline_tycoon/internal/models"
)

var slotsByScale = map[models.AirportScale]int{
	models.ScaleMega:     1000,
	models.ScaleHub:      700,
	models.ScaleMajor:    400,
	models.ScaleRegional: 150,
}

// DisplayName renders the "City Name (CODE)" form used on routes.
func DisplayName(city, code string) string {
	return fmt.Sprintf("%s (%s)", city, code)
}

var codePattern = regexp.MustCompile(`\(([^)]+)\)`)

// ParseAirportCode extracts the first parenthesised token of a display name.
func ParseAirportCode(name string) (string, bool) {
	m := codePattern.FindStringSubmatch(name)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func airport(code, city, country string, lat, lon float64, scale models.AirportScale, runway int) models.Airport {
	return models.Airport{
		Code:         code,
		Name:         DisplayName(city, code),
		Country:      country,
		Latitude:     lat,
		Longitude:    lon,
		Scale:        scale,
		Slots:        slotsByScale[scale],
		RunwayLength: runway,
	}
}

func defaultAirports() []models.Airport {
	const (
		mega     = models.ScaleMega
		hub      = models.ScaleHub
		major    = models.ScaleMajor
		regional = models.ScaleRegional
	)
	return []models.Airport{
		// KR
		airport("ICN", "Seoul Incheon", "KR", 37.4602, 126.4407, mega, 4000),
		airport("GMP", "Seoul Gimpo", "KR", 37.5583, 126.7906, major, 3600),
		airport("PUS", "Busan Gimhae", "KR", 35.1795, 128.9382, major, 3200),
		airport("CJU", "Jeju", "KR", 33.5113, 126.4930, major, 3180),
		airport("TAE", "Daegu", "KR", 35.8941, 128.6589, regional, 2755),
		airport("CJJ", "Cheongju", "KR", 36.7166, 127.4991, regional, 2744),
		// NL
		airport("AMS", "Amsterdam Schiphol", "NL", 52.3105, 4.7683, mega, 3800),
		// DE
		airport("FRA", "Frankfurt", "DE", 50.0379, 8.5622, mega, 4000),
		airport("MUC", "Munich", "DE", 48.3538, 11.7861, hub, 4000),
		airport("BER", "Berlin Brandenburg", "DE", 52.3667, 13.5033, major, 4000),
		airport("DUS", "Dusseldorf", "DE", 51.2895, 6.7668, major, 3000),
		// TW
		airport("TPE", "Taipei Taoyuan", "TW", 25.0797, 121.2342, hub, 3800),
		airport("KHH", "Kaohsiung", "TW", 22.5771, 120.3500, regional, 3150),
		// US
		airport("JFK", "New York JFK", "US", 40.6413, -73.7781, mega, 4423),
		airport("LAX", "Los Angeles", "US", 33.9416, -118.4085, mega, 3685),
		airport("SFO", "San Francisco", "US", 37.6213, -122.3790, hub, 3618),
		airport("ORD", "Chicago O'Hare", "US", 41.9742, -87.9073, mega, 3962),
		airport("ATL", "Atlanta", "US", 33.6407, -84.4277, mega, 3776),
		airport("EWR", "Newark", "US", 40.6895, -74.1745, hub, 3353),
		airport("MIA", "Miami", "US", 25.7959, -80.2870, hub, 3963),
		airport("DFW", "Dallas Fort Worth", "US", 32.8998, -97.0403, mega, 4085),
		airport("SEA", "Seattle Tacoma", "US", 47.4502, -122.3088, hub, 3627),
		airport("BOS", "Boston Logan", "US", 42.3656, -71.0096, major, 3073),
		airport("DEN", "Denver", "US", 39.8561, -104.6737, hub, 4877),
		airport("LAS", "Las Vegas", "US", 36.0840, -115.1537, major, 4423),
		airport("MCO", "Orlando", "US", 28.4312, -81.3081, major, 3659),
		airport("LGA", "New York LaGuardia", "US", 40.7769, -73.8740, major, 2134),
		airport("ASE", "Aspen", "US", 39.2232, -106.8688, regional, 2448),
		// VN
		airport("SGN", "Ho Chi Minh City", "VN", 10.8188, 106.6520, hub, 3800),
		airport("HAN", "Hanoi Noi Bai", "VN", 21.2187, 105.8042, hub, 3800),
		airport("DAD", "Da Nang", "VN", 16.0439, 108.1994, major, 3048),
		// BR
		airport("GRU", "Sao Paulo Guarulhos", "BR", -23.4356, -46.4731, hub, 3700),
		airport("GIG", "Rio de Janeiro Galeao", "BR", -22.8100, -43.2506, major, 4000),
		// ES
		airport("MAD", "Madrid Barajas", "ES", 40.4983, -3.5676, hub, 4350),
		airport("BCN", "Barcelona El Prat", "ES", 41.2974, 2.0833, hub, 3352),
		// SG
		airport("SIN", "Singapore Changi", "SG", 1.3644, 103.9915, mega, 4000),
		// AE
		airport("DXB", "Dubai", "AE", 25.2532, 55.3657, mega, 4447),
		airport("AUH", "Abu Dhabi", "AE", 24.4330, 54.6511, hub, 4100),
		// AT
		airport("SZG", "Salzburg", "AT", 47.7933, 13.0043, regional, 2750),
		// GB
		airport("LHR", "London Heathrow", "GB", 51.4700, -0.4543, mega, 3902),
		airport("LGW", "London Gatwick", "GB", 51.1537, -0.1821, hub, 3316),
		airport("STN", "London Stansted", "GB", 51.8860, 0.2389, major, 3048),
		airport("MAN", "Manchester", "GB", 53.3537, -2.2750, major, 3048),
		airport("EDI", "Edinburgh", "GB", 55.9508, -3.3615, major, 2556),
		airport("LCY", "London City", "GB", 51.5048, 0.0495, regional, 1508),
		// IT
		airport("FCO", "Rome Fiumicino", "IT", 41.8003, 12.2389, hub, 3900),
		airport("MXP", "Milan Malpensa", "IT", 45.6306, 8.7281, major, 3920),
		airport("FLR", "Florence", "IT", 43.8100, 11.2051, regional, 1750),
		// IN
		airport("DEL", "Delhi", "IN", 28.5562, 77.1000, hub, 4430),
		// JP
		airport("NRT", "Tokyo Narita", "JP", 35.7720, 140.3929, mega, 4000),
		airport("HND", "Tokyo Haneda", "JP", 35.5494, 139.7798, mega, 3360),
		airport("KIX", "Osaka Kansai", "JP", 34.4320, 135.2304, hub, 4000),
		airport("ITM", "Osaka Itami", "JP", 34.7855, 135.4382, major, 3000),
		airport("NGO", "Nagoya Chubu", "JP", 34.8584, 136.8054, major, 3500),
		airport("FUK", "Fukuoka", "JP", 33.5859, 130.4507, major, 2800),
		airport("CTS", "Sapporo New Chitose", "JP", 42.7752, 141.6923, major, 3000),
		airport("OKA", "Okinawa Naha", "JP", 26.1958, 127.6459, major, 3000),
		// CN
		airport("PEK", "Beijing Capital", "CN", 40.0799, 116.6031, mega, 3800),
		airport("PVG", "Shanghai Pudong", "CN", 31.1443, 121.8083, mega, 4000),
		airport("PKX", "Beijing Daxing", "CN", 39.5098, 116.4105, hub, 3800),
		airport("SHA", "Shanghai Hongqiao", "CN", 31.1979, 121.3363, major, 3400),
		airport("CAN", "Guangzhou Baiyun", "CN", 23.3924, 113.2988, hub, 3800),
		airport("CTU", "Chengdu Shuangliu", "CN", 30.5785, 103.9471, hub, 3600),
		airport("SZX", "Shenzhen Bao'an", "CN", 22.6393, 113.8107, hub, 3800),
		airport("XIY", "Xi'an Xianyang", "CN", 34.4471, 108.7516, major, 3800),
		// CA
		airport("YYZ", "Toronto Pearson", "CA", 43.6777, -79.6248, hub, 3389),
		airport("YVR", "Vancouver", "CA", 49.1967, -123.1815, hub, 3505),
		airport("YUL", "Montreal Trudeau", "CA", 45.4706, -73.7408, major, 3353),
		airport("YYC", "Calgary", "CA", 51.1215, -114.0076, major, 4267),
		// QA
		airport("DOH", "Doha Hamad", "QA", 25.2731, 51.6081, mega, 4850),
		// TR
		airport("IST", "Istanbul", "TR", 41.2753, 28.7519, mega, 4100),
		// TH
		airport("BKK", "Bangkok Suvarnabhumi", "TH", 13.6900, 100.7501, mega, 4000),
		airport("DMK", "Bangkok Don Mueang", "TH", 13.9126, 100.6068, major, 3700),
		airport("HKT", "Phuket", "TH", 8.1132, 98.3169, major, 3000),
		airport("CNX", "Chiang Mai", "TH", 18.7668, 98.9626, regional, 3100),
		// FR
		airport("CDG", "Paris Charles de Gaulle", "FR", 49.0097, 2.5479, mega, 4215),
		airport("ORY", "Paris Orly", "FR", 48.7262, 2.3652, major, 3650),
		airport("NCE", "Nice Cote d'Azur", "FR", 43.6584, 7.2159, major, 2960),
		airport("LYS", "Lyon Saint-Exupery", "FR", 45.7256, 5.0811, major, 4000),
		// PH
		airport("MNL", "Manila Ninoy Aquino", "PH", 14.5086, 121.0194, hub, 3737),
		// MX
		airport("MEX", "Mexico City", "MX", 19.4361, -99.0719, hub, 3952),
		// AU
		airport("SYD", "Sydney Kingsford Smith", "AU", -33.9399, 151.1753, hub, 3962),
		airport("MEL", "Melbourne Tullamarine", "AU", -37.6690, 144.8410, hub, 3657),
		airport("BNE", "Brisbane", "AU", -27.3842, 153.1175, major, 3560),
		airport("PER", "Perth", "AU", -31.9385, 115.9672, major, 3444),
		// HK
		airport("HKG", "Hong Kong", "HK", 22.3080, 113.9185, mega, 3800),
		// ZA
		airport("JNB", "Johannesburg O.R. Tambo", "ZA", -26.1392, 28.2460, hub, 4418),
		airport("CPT", "Cape Town", "ZA", -33.9715, 18.6021, major, 3201),
		// EG
		airport("CAI", "Cairo", "EG", 30.1219, 31.4056, hub, 4000),
		// ET
		airport("ADD", "Addis Ababa Bole", "ET", 8.9779, 38.7993, hub, 3800),
		// KE
		airport("NBO", "Nairobi Jomo Kenyatta", "KE", -1.3192, 36.9278, major, 4117),
		// NG
		airport("LOS", "Lagos Murtala Muhammed", "NG", 6.5774, 3.3210, major, 3900),
		// MA
		airport("CMN", "Casablanca Mohammed V", "MA", 33.3675, -7.5898, major, 3720),
		// DZ
		airport("ALG", "Algiers Houari Boumediene", "DZ", 36.6910, 3.2154, major, 3500),
	}
}
