package domain

import "stp-signer/pkg/apperror"

// STPBankCode is the institution code of STP itself, the default operating bank.
const STPBankCode = "90646"

// clabePrefixes maps the first three digits of a CLABE to the 5-digit SPEI
// institution code.
var clabePrefixes = map[string]string{
	"002": "40002",
	"006": "37006",
	"009": "37009",
	"012": "40012",
	"014": "40014",
	"019": "37019",
	"021": "40021",
	"030": "40030",
	"036": "40036",
	"042": "40042",
	"044": "40044",
	"058": "40058",
	"059": "40059",
	"060": "40060",
	"062": "40062",
	"072": "40072",
	"102": "40102",
	"103": "40103",
	"106": "40106",
	"108": "40108",
	"110": "40110",
	"112": "40112",
	"113": "40113",
	"116": "40116",
	"124": "40124",
	"126": "40126",
	"127": "40127",
	"128": "40128",
	"129": "40129",
	"130": "40130",
	"132": "40132",
	"133": "40133",
	"135": "37135",
	"136": "40136",
	"137": "40137",
	"138": "40138",
	"140": "40140",
	"141": "40141",
	"143": "40143",
	"145": "40145",
	"147": "40147",
	"148": "40148",
	"150": "40150",
	"151": "40151",
	"152": "40152",
	"154": "40154",
	"155": "40155",
	"156": "40156",
	"157": "40157",
	"158": "40158",
	"160": "40160",
	"166": "37166",
	"168": "37168",
	"600": "90600",
	"601": "90601",
	"602": "90602",
	"605": "90605",
	"608": "90608",
	"613": "90613",
	"616": "90616",
	"617": "90617",
	"620": "90620",
	"630": "90630",
	"631": "90631",
	"634": "90634",
	"638": "90638",
	"642": "90642",
	"646": "90646",
	"652": "90652",
	"653": "90653",
	"656": "90656",
	"659": "90659",
	"670": "90670",
	"677": "90677",
	"680": "90680",
	"683": "90683",
	"684": "90684",
	"685": "90685",
	"686": "90686",
	"689": "90689",
	"699": "90699",
	"703": "90703",
	"706": "90706",
	"710": "90710",
	"722": "90722",
	"723": "90723",
	"728": "90728",
	"730": "90730",
	"902": "90902",
	"903": "90903",
}

// bankNames maps SPEI institution codes to their display names.
var bankNames = map[string]string{
	"40002": "BANAMEX",
	"37006": "BANCOMEXT",
	"37009": "BANOBRAS",
	"40012": "BBVA Bancomer",
	"40014": "Santander",
	"37019": "BANJERCITO",
	"40021": "HSBC",
	"40030": "Bajío",
	"40036": "Inbursa",
	"40042": "Mifel",
	"40044": "Scotiabank",
	"40058": "Banregio",
	"40059": "Invex",
	"40060": "Bansi",
	"40062": "Afirme",
	"40072": "Banorte/Ixe",
	"40102": "Accendo Banco",
	"40103": "American Express",
	"40106": "BAMSA",
	"40108": "Tokyo",
	"40110": "JP Morgan",
	"40112": "Bmonex",
	"40113": "Ve por Mas",
	"40116": "ING",
	"40124": "Deutsche",
	"40126": "Credit Suisse",
	"40127": "Azteca",
	"40128": "Autofin",
	"40129": "Barclays",
	"40130": "Compartamos",
	"40132": "Multiva Banco",
	"40133": "Actinver",
	"37135": "Nafin",
	"40136": "Intercam Banco",
	"40137": "BanCoppel",
	"40138": "ABC Capital",
	"40140": "Consubanco",
	"40141": "Volkswagen",
	"40143": "CIBanco",
	"40145": "Bbase",
	"40147": "Bankaool",
	"40148": "PagaTodo",
	"40150": "Inmobiliario",
	"40151": "Donde",
	"40152": "Bancrea",
	"40154": "Banco Covalto",
	"40155": "ICBC",
	"40156": "Sabadell",
	"40157": "Shinhan",
	"40158": "Mizuho Bank",
	"40160": "Bank of China",
	"37166": "BaBien",
	"37168": "Hipotecaria Federal",
	"90600": "Monexcb",
	"90601": "GBM",
	"90602": "Masari",
	"90605": "Value",
	"90608": "Vector",
	"90613": "Multiva Cbolsa",
	"90616": "Finamex",
	"90617": "Valmex",
	"90620": "Profuturo",
	"90630": "CB Intercam",
	"90631": "CI Bolsa",
	"90634": "Fincomun",
	"90638": "NU MEXICO",
	"90642": "Reforma",
	"90646": "STP",
	"90652": "Credicapital",
	"90653": "Kuspit",
	"90656": "Unagra",
	"90659": "Asp Integra Opc",
	"90670": "Libertad",
	"90677": "Caja Pop Mexica",
	"90680": "Cristobal Colon",
	"90683": "Caja Telefonist",
	"90684": "Transfer",
	"90685": "Fondo (FIRA)",
	"90686": "Invercap",
	"90689": "Fomped",
	"90699": "Fondeadora",
	"90703": "Tesored",
	"90706": "Arcus",
	"90710": "NVIO",
	"90722": "Mercado Pago",
	"90723": "Cuenca",
	"90728": "Spin by OXXO",
	"90730": "Swap",
	"90902": "Indeval",
	"90903": "CoDi Valida",
}

// BankCodeFromClabePrefix resolves the institution code for a 3-digit CLABE prefix.
func BankCodeFromClabePrefix(prefix string) (string, bool) {
	code, ok := clabePrefixes[prefix]
	return code, ok
}

// BankName returns the display name of an institution code.
func BankName(code string) (string, bool) {
	name, ok := bankNames[code]
	return name, ok
}

// ValidateBankCode checks that code is a 5-digit institution code known to SPEI.
func ValidateBankCode(field, code string) error {
	if len(code) != 5 || !isDigits(code) {
		return apperror.ErrInvalidField(field, "must be a 5-digit bank code")
	}
	if _, ok := bankNames[code]; !ok {
		return apperror.ErrUnknownBankCode(field, code)
	}
	return nil
}
