// README: Keyword lexicons and airport tables for intent detection and parameter extraction.
package supervisor

// The lexicons below are package-level and never mutated after init;
// they are safely shared across all sessions. Each Vietnamese phrase
// appears with and without diacritics because users type both.

// flightKeywords is the broad flight-adjacent lexicon. Entries overlap
// with everyday words, so classification requires two hits.
var flightKeywords = []string{
	"vé", "ve", "chuyến bay", "chuyen bay", "flight", "bay",
	"tìm vé", "tim ve", "đặt vé", "dat ve", "giá vé", "gia ve",
	"khứ hồi", "khu hoi", "một chiều", "mot chieu", "roundtrip", "oneway",
	"sgn", "han", "dad", "sài gòn", "sai gon", "hà nội", "ha noi", "đà nẵng", "da nang",
	"hcm", "hn", "đi", "di", "đến", "den", "từ", "tu",
	"sg", "dn", "sg-hn", "hn-sg", "sg-dn", "dn-sg", "hn-dn", "dn-hn",
	"sài gòn hà nội", "hà nội sài gòn", "saigon hanoi", "hanoi saigon",
}

// flightStrongKeywords are curated unambiguous flight-search phrases;
// one hit routes to flight and bypasses the chat-override tier.
var flightStrongKeywords = []string{
	"chuyến bay", "chuyen bay", "flight", "vé máy bay", "ve may bay",
	"tìm vé", "tim ve", "đặt vé", "dat ve", "giá vé", "gia ve",
	"khứ hồi", "khu hoi", "một chiều", "mot chieu", "roundtrip", "oneway",
	"sg-hn", "hn-sg", "sg-dn", "dn-sg", "sgn-han", "han-sgn",
}

var bookingKeywords = []string{
	"pnr", "booking", "mã đặt", "ma dat", "tra cứu", "tra cuu",
	"kiểm tra", "kiem tra", "đặt chỗ", "dat cho", "giữ chỗ", "giu cho",
}

var ticketingKeywords = []string{
	"xuất vé", "xuat ve", "issue ticket", "phát vé", "phat ve",
	"void", "hoàn vé", "hoan ve", "đổi vé", "doi ve", "reissue",
	"số vé", "so ve", "ticket number", "vé điện tử", "ve dien tu",
	"emd", "refund", "hoàn tiền", "hoan tien",
}

var pnrKeywords = []string{
	"pnr", "booking", "hủy booking", "huy booking", "cancel",
	"hủy chặng", "huy chang", "đổi chuyến", "doi chuyen",
	"thêm hành khách", "them hanh khach", "split", "tách pnr",
	"ssr", "ffn", "frequent flyer", "thẻ thành viên", "the thanh vien",
	"remark", "osi", "cập nhật liên hệ", "cap nhat lien he",
}

var ancillaryKeywords = []string{
	"ghế", "ghe", "seat", "chỗ ngồi", "cho ngoi", "sơ đồ ghế", "so do ghe",
	"hành lý", "hanh ly", "baggage", "luggage", "vali", "túi xách",
	"suất ăn", "suat an", "meal", "đồ ăn", "do an",
	"dịch vụ", "dich vu", "thêm dịch vụ", "them dich vu",
}

// chatKeywords mark informational questions that must not trigger a
// flight search even when a destination is mentioned.
var chatKeywords = []string{
	// weather/season
	"mùa nào", "mua nao", "thời tiết", "thoi tiet", "weather", "season",
	"khi nào", "khi nao", "lúc nào", "luc nao", "bao giờ", "bao gio",
	// travel tips
	"đẹp nhất", "dep nhat", "best time", "nên đi", "nen di",
	"thích hợp", "thich hop", "phù hợp", "phu hop",
	"gợi ý", "goi y", "suggest", "recommend", "tư vấn", "tu van",
	// info questions
	"là gì", "la gi", "what is", "how to", "làm sao", "lam sao",
	"ở đâu", "o dau", "where", "tại sao", "tai sao", "why",
	"bao nhiêu", "bao nhieu", "how much", "how many",
	// policy questions
	"chính sách", "chinh sach", "policy", "quy định", "quy dinh",
	"hành lý", "hanh ly", "baggage", "luggage", "ký gửi", "ky gui",
	"hoàn vé", "hoan ve", "refund", "đổi vé", "doi ve", "change",
	// general question markers
	"có nên", "co nen", "should i", "có được", "co duoc",
	"như thế nào", "nhu the nao", "how", "thế nào", "the nao",
}

// continueKeywords are short affirmatives that resolve elliptical
// follow-ups against prior flight-search context.
var continueKeywords = []string{
	"tiếp", "tiep", "xử lý", "xu ly", "đi", "di",
	"ok", "được", "duoc", "yes", "vâng", "vang",
}

var farewellKeywords = []string{"tạm biệt", "tam biet", "bye", "goodbye"}

// airportCodes maps city and country names to the primary airport code.
var airportCodes = map[string]string{
	// Vietnam
	"sài gòn": "SGN", "sai gon": "SGN", "hồ chí minh": "SGN", "ho chi minh": "SGN",
	"hcm": "SGN", "sg": "SGN", "tân sơn nhất": "SGN",
	"hà nội": "HAN", "ha noi": "HAN", "hn": "HAN", "nội bài": "HAN",
	"đà nẵng": "DAD", "da nang": "DAD", "đn": "DAD", "dn": "DAD",
	"nha trang": "CXR", "cam ranh": "CXR",
	"phú quốc": "PQC", "phu quoc": "PQC",
	"đà lạt": "DLI", "da lat": "DLI",
	"huế": "HUI", "hue": "HUI",
	"hải phòng": "HPH", "hai phong": "HPH",
	"quy nhơn": "UIH", "quy nhon": "UIH",
	// Asia. Country names stay out of this map on purpose: they fall
	// through to countryAirports so the user picks a concrete airport.
	"bangkok": "BKK",
	"singapore": "SIN",
	"seoul": "ICN", "incheon": "ICN",
	"tokyo": "NRT", "narita": "NRT",
	"osaka": "KIX",
	"hong kong": "HKG", "hồng kông": "HKG",
	"taipei": "TPE", "đài bắc": "TPE",
	"kuala lumpur": "KUL",
	"manila": "MNL",
	"jakarta": "CGK",
	"bali": "DPS", "denpasar": "DPS",
	// Others
	"paris":         "CDG",
	"london":        "LHR",
	"sydney":        "SYD",
	"los angeles":   "LAX",
	"new york":      "JFK",
	"san francisco": "SFO",
}

// ambiguousCityTokens are short names standing for both a city and a
// common syllable ("hàn" the country vs "Hàn" in other words). They
// are excluded from the generic city scan and resolved only by the
// route-pattern and IATA rules.
var ambiguousCityTokens = map[string]bool{
	"han": true, "hàn": true, "hn": true, "hcm": true,
	"đn": true, "sg": true, "dn": true,
}

// countryAirports suggests candidate airports when only a country is
// mentioned; the user must then pick a specific city or code.
var countryAirports = map[string][]string{
	"hàn quốc": {"ICN (Seoul/Incheon)", "PUS (Busan)"},
	"han quoc": {"ICN (Seoul/Incheon)", "PUS (Busan)"},
	"hàn":      {"ICN (Seoul/Incheon)", "PUS (Busan)"},
	"han":      {"ICN (Seoul/Incheon)", "PUS (Busan)"},
	"nhật bản": {"NRT (Tokyo/Narita)", "HND (Tokyo/Haneda)", "KIX (Osaka)", "NGO (Nagoya)"},
	"nhat ban": {"NRT (Tokyo/Narita)", "HND (Tokyo/Haneda)", "KIX (Osaka)", "NGO (Nagoya)"},
	"nhật":     {"NRT (Tokyo/Narita)", "HND (Tokyo/Haneda)", "KIX (Osaka)"},
	"nhat":     {"NRT (Tokyo/Narita)", "HND (Tokyo/Haneda)", "KIX (Osaka)"},
	"thái lan": {"BKK (Bangkok)", "CNX (Chiang Mai)", "HKT (Phuket)"},
	"thai lan": {"BKK (Bangkok)", "CNX (Chiang Mai)", "HKT (Phuket)"},
	"trung quốc": {"PEK (Beijing)", "PVG (Shanghai)", "CAN (Guangzhou)", "SZX (Shenzhen)"},
	"trung quoc": {"PEK (Beijing)", "PVG (Shanghai)", "CAN (Guangzhou)", "SZX (Shenzhen)"},
	"đài loan": {"TPE (Taipei)", "KHH (Kaohsiung)"},
	"dai loan": {"TPE (Taipei)", "KHH (Kaohsiung)"},
	"malaysia": {"KUL (Kuala Lumpur)", "PEN (Penang)"},
	"indonesia": {"CGK (Jakarta)", "DPS (Bali)"},
	"philippines": {"MNL (Manila)", "CEB (Cebu)"},
	"úc":        {"SYD (Sydney)", "MEL (Melbourne)", "BNE (Brisbane)"},
	"uc":        {"SYD (Sydney)", "MEL (Melbourne)", "BNE (Brisbane)"},
	"australia": {"SYD (Sydney)", "MEL (Melbourne)", "BNE (Brisbane)"},
	"mỹ": {"LAX (Los Angeles)", "SFO (San Francisco)", "JFK (New York)"},
	"my": {"LAX (Los Angeles)", "SFO (San Francisco)", "JFK (New York)"},
	"pháp": {"CDG (Paris)", "NCE (Nice)"},
	"phap": {"CDG (Paris)", "NCE (Nice)"},
	"anh":  {"LHR (London Heathrow)", "LGW (London Gatwick)"},
}

// routeAbbrevs resolve two-letter route shorthand ("sg-hn") to codes.
var routeAbbrevs = map[string]string{
	"sg": "SGN", "sgn": "SGN", "hcm": "SGN",
	"hn": "HAN", "han": "HAN",
	"dn": "DAD", "dad": "DAD",
}
