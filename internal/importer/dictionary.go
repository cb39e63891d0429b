package importer

// dictionary.go holds the static lookup tables the classifier runs on:
// known header spellings across vendor exports (TCGplayer, eBay, Cardmarket,
// vault/grading tools, generic spreadsheets) plus German and Spanish
// locales, per-type keyword lists for fuzzy header matching, and value
// vocabularies for data-driven inference. All of it is read-only reference
// data built once at init.

// headerDictionary maps a lowercased, trimmed header spelling directly to a
// semantic type. Exact hits classify at confidence 1.0.
var headerDictionary = map[string]ColumnType{
	// Name
	"name":                ColumnName,
	"card name":           ColumnName,
	"card":                ColumnName,
	"cardname":            ColumnName,
	"card_name":           ColumnName,
	"product name":        ColumnName,
	"productname":         ColumnName,
	"product":             ColumnName,
	"item name":           ColumnName,
	"item":                ColumnName,
	"item title":          ColumnName,
	"title":               ColumnName,
	"pokemon":             ColumnName,
	"pokemon name":        ColumnName,
	"character":           ColumnName,
	"card title":          ColumnName,
	"listing title":       ColumnName,
	"kartenname":          ColumnName,
	"produktname":         ColumnName,
	"artikelname":         ColumnName,
	"bezeichnung":         ColumnName,
	"karte":               ColumnName,
	"nombre":              ColumnName,
	"nombre de carta":     ColumnName,
	"nombre de la carta":  ColumnName,
	"nombre del producto": ColumnName,
	"carta":               ColumnName,
	"articulo":            ColumnName,
	"artículo":            ColumnName,

	// Set name
	"set":            ColumnSetName,
	"set name":       ColumnSetName,
	"setname":        ColumnSetName,
	"set_name":       ColumnSetName,
	"set/series":     ColumnSetName,
	"set title":      ColumnSetName,
	"edition":        ColumnSetName,
	"edition name":   ColumnSetName,
	"expansion":      ColumnSetName,
	"expansion name": ColumnSetName,
	"series":         ColumnSetName,
	"collection":     ColumnSetName,
	"erweiterung":    ColumnSetName,
	"serie":          ColumnSetName,
	"sammlung":       ColumnSetName,
	"coleccion":      ColumnSetName,
	"colección":      ColumnSetName,
	"edicion":        ColumnSetName,
	"edición":        ColumnSetName,
	"expansión":      ColumnSetName,
	"nombre del set": ColumnSetName,

	// Card number
	"number":           ColumnCardNumber,
	"card number":      ColumnCardNumber,
	"cardnumber":       ColumnCardNumber,
	"card_number":      ColumnCardNumber,
	"card #":           ColumnCardNumber,
	"card no":          ColumnCardNumber,
	"card no.":         ColumnCardNumber,
	"card num":         ColumnCardNumber,
	"no":               ColumnCardNumber,
	"no.":              ColumnCardNumber,
	"num":              ColumnCardNumber,
	"#":                ColumnCardNumber,
	"collector number": ColumnCardNumber,
	"collector #":      ColumnCardNumber,
	"number in set":    ColumnCardNumber,
	"item number":      ColumnCardNumber,
	"nummer":           ColumnCardNumber,
	"kartennummer":     ColumnCardNumber,
	"sammlernummer":    ColumnCardNumber,
	"nr":               ColumnCardNumber,
	"nr.":              ColumnCardNumber,
	"numero":           ColumnCardNumber,
	"número":           ColumnCardNumber,
	"numero de carta":  ColumnCardNumber,
	"número de carta":  ColumnCardNumber,

	// Quantity
	"quantity":        ColumnQuantity,
	"qty":             ColumnQuantity,
	"qty owned":       ColumnQuantity,
	"total quantity":  ColumnQuantity,
	"add to quantity": ColumnQuantity,
	"count":           ColumnQuantity,
	"copies":          ColumnQuantity,
	"owned":           ColumnQuantity,
	"in stock":        ColumnQuantity,
	"stock":           ColumnQuantity,
	"anzahl":          ColumnQuantity,
	"menge":           ColumnQuantity,
	"stueckzahl":      ColumnQuantity,
	"stückzahl":       ColumnQuantity,
	"cantidad":        ColumnQuantity,
	"unidades":        ColumnQuantity,
	"copias":          ColumnQuantity,

	// Purchase price
	"purchase price":    ColumnPurchasePrice,
	"price paid":        ColumnPurchasePrice,
	"paid":              ColumnPurchasePrice,
	"cost":              ColumnPurchasePrice,
	"cost paid":         ColumnPurchasePrice,
	"cost basis":        ColumnPurchasePrice,
	"unit cost":         ColumnPurchasePrice,
	"avg cost":          ColumnPurchasePrice,
	"average cost":      ColumnPurchasePrice,
	"average cost paid": ColumnPurchasePrice,
	"buy price":         ColumnPurchasePrice,
	"bought for":        ColumnPurchasePrice,
	"acquisition cost":  ColumnPurchasePrice,
	"my price":          ColumnPurchasePrice,
	"kaufpreis":         ColumnPurchasePrice,
	"einkaufspreis":     ColumnPurchasePrice,
	"gezahlter preis":   ColumnPurchasePrice,
	"kosten":            ColumnPurchasePrice,
	"precio de compra":  ColumnPurchasePrice,
	"precio pagado":     ColumnPurchasePrice,
	"costo":             ColumnPurchasePrice,
	"coste":             ColumnPurchasePrice,
	"costo de compra":   ColumnPurchasePrice,

	// Market price
	"market price":           ColumnMarketPrice,
	"market value":           ColumnMarketPrice,
	"market":                 ColumnMarketPrice,
	"price":                  ColumnMarketPrice,
	"value":                  ColumnMarketPrice,
	"current price":          ColumnMarketPrice,
	"current value":          ColumnMarketPrice,
	"estimated value":        ColumnMarketPrice,
	"fair market value":      ColumnMarketPrice,
	"tcg market price":       ColumnMarketPrice,
	"tcgplayer market price": ColumnMarketPrice,
	"cardmarket price":       ColumnMarketPrice,
	"trend price":            ColumnMarketPrice,
	"price trend":            ColumnMarketPrice,
	"avg. sell price":        ColumnMarketPrice,
	"average sell price":     ColumnMarketPrice,
	"low price":              ColumnMarketPrice,
	"mid price":              ColumnMarketPrice,
	"marktpreis":             ColumnMarketPrice,
	"marktwert":              ColumnMarketPrice,
	"aktueller preis":        ColumnMarketPrice,
	"preistrend":             ColumnMarketPrice,
	"durchschnittspreis":     ColumnMarketPrice,
	"precio de mercado":      ColumnMarketPrice,
	"valor de mercado":       ColumnMarketPrice,
	"precio actual":          ColumnMarketPrice,
	"valor":                  ColumnMarketPrice,

	// Condition
	"condition":      ColumnCondition,
	"card condition": ColumnCondition,
	"item condition": ColumnCondition,
	"cond":           ColumnCondition,
	"zustand":        ColumnCondition,
	"erhaltung":      ColumnCondition,
	"kartenzustand":  ColumnCondition,
	"condicion":      ColumnCondition,
	"condición":      ColumnCondition,
	"estado":         ColumnCondition,

	// Grading company
	"grading company":       ColumnGradingCompany,
	"grading service":       ColumnGradingCompany,
	"grading":               ColumnGradingCompany,
	"grader":                ColumnGradingCompany,
	"graded by":             ColumnGradingCompany,
	"grade company":         ColumnGradingCompany,
	"certification company": ColumnGradingCompany,
	"cert company":          ColumnGradingCompany,
	"bewertungsfirma":       ColumnGradingCompany,
	"certificadora":         ColumnGradingCompany,
	"empresa de graduacion": ColumnGradingCompany,
	"empresa de graduación": ColumnGradingCompany,

	// Grade
	"grade":         ColumnGrade,
	"grade value":   ColumnGrade,
	"numeric grade": ColumnGrade,
	"overall grade": ColumnGrade,
	"psa grade":     ColumnGrade,
	"bgs grade":     ColumnGrade,
	"cgc grade":     ColumnGrade,
	"note":          ColumnGrade,
	"bewertung":     ColumnGrade,
	"grado":         ColumnGrade,
	"calificacion":  ColumnGrade,
	"calificación":  ColumnGrade,

	// Rarity
	"rarity":      ColumnRarity,
	"card rarity": ColumnRarity,
	"rarity type": ColumnRarity,
	"seltenheit":  ColumnRarity,
	"raritaet":    ColumnRarity,
	"rarität":     ColumnRarity,
	"rareza":      ColumnRarity,

	// Category
	"category":         ColumnCategory,
	"product type":     ColumnCategory,
	"product line":     ColumnCategory,
	"item type":        ColumnCategory,
	"supertype":        ColumnCategory,
	"kategorie":        ColumnCategory,
	"produkttyp":       ColumnCategory,
	"categoria":        ColumnCategory,
	"categoría":        ColumnCategory,
	"tipo":             ColumnCategory,
	"tipo de producto": ColumnCategory,

	// Language
	"language":      ColumnLanguage,
	"card language": ColumnLanguage,
	"lang":          ColumnLanguage,
	"sprache":       ColumnLanguage,
	"kartensprache": ColumnLanguage,
	"idioma":        ColumnLanguage,
	"lenguaje":      ColumnLanguage,

	// Notes
	"notes":            ColumnNotes,
	"comments":         ColumnNotes,
	"comment":          ColumnNotes,
	"remarks":          ColumnNotes,
	"memo":             ColumnNotes,
	"details":          ColumnNotes,
	"description":      ColumnNotes,
	"additional notes": ColumnNotes,
	"notizen":          ColumnNotes,
	"anmerkung":        ColumnNotes,
	"anmerkungen":      ColumnNotes,
	"kommentar":        ColumnNotes,
	"bemerkungen":      ColumnNotes,
	"beschreibung":     ColumnNotes,
	"notas":            ColumnNotes,
	"nota":             ColumnNotes,
	"comentarios":      ColumnNotes,
	"comentario":       ColumnNotes,
	"descripcion":      ColumnNotes,
	"descripción":      ColumnNotes,
	"observaciones":    ColumnNotes,

	// Image URL
	"image":         ColumnImageURL,
	"image url":     ColumnImageURL,
	"image link":    ColumnImageURL,
	"img":           ColumnImageURL,
	"img url":       ColumnImageURL,
	"picture":       ColumnImageURL,
	"picture url":   ColumnImageURL,
	"photo":         ColumnImageURL,
	"photo url":     ColumnImageURL,
	"scan":          ColumnImageURL,
	"front image":   ColumnImageURL,
	"bild":          ColumnImageURL,
	"bild url":      ColumnImageURL,
	"foto":          ColumnImageURL,
	"abbildung":     ColumnImageURL,
	"imagen":        ColumnImageURL,
	"url de imagen": ColumnImageURL,

	// Certificate number
	"cert":                  ColumnCertNumber,
	"cert number":           ColumnCertNumber,
	"cert #":                ColumnCertNumber,
	"cert no":               ColumnCertNumber,
	"cert id":               ColumnCertNumber,
	"certificate number":    ColumnCertNumber,
	"certification number":  ColumnCertNumber,
	"certification":         ColumnCertNumber,
	"psa cert":              ColumnCertNumber,
	"serial":                ColumnCertNumber,
	"serial number":         ColumnCertNumber,
	"zertifikat":            ColumnCertNumber,
	"zertifikatsnummer":     ColumnCertNumber,
	"seriennummer":          ColumnCertNumber,
	"certificado":           ColumnCertNumber,
	"numero de certificado": ColumnCertNumber,
	"número de certificado": ColumnCertNumber,
	"numero de serie":       ColumnCertNumber,
	"número de serie":       ColumnCertNumber,
}

// pricePrefix matches headers that start with a known price-bearing phrase,
// typically carrying a trailing "as of <date>" suffix in marketplace
// exports. Matches classify at confidence 0.95.
type pricePrefix struct {
	prefix string
	typ    ColumnType
}

var pricePrefixes = []pricePrefix{
	{"tcg market price", ColumnMarketPrice},
	{"tcgplayer market price", ColumnMarketPrice},
	{"cardmarket price trend", ColumnMarketPrice},
	{"market price as of", ColumnMarketPrice},
	{"market value as of", ColumnMarketPrice},
	{"average cost as of", ColumnPurchasePrice},
	{"cost basis as of", ColumnPurchasePrice},
}

// keywordSpec drives the fuzzy tier: a header whose tokens hit the keyword
// list for at least half of its tokens takes the type at base confidence
// scaled by the matched fraction. Order matters; earlier entries win when
// several lists would qualify.
type keywordSpec struct {
	typ      ColumnType
	base     float64
	keywords []string
}

var keywordSpecs = []keywordSpec{
	{ColumnPurchasePrice, 0.85, []string{"cost", "paid", "buy", "bought", "purchase", "acquisition", "basis"}},
	{ColumnMarketPrice, 0.85, []string{"market", "value", "worth", "trend", "sell", "estimate", "price"}},
	{ColumnGradingCompany, 0.80, []string{"grading", "grader", "graded", "certifier"}},
	{ColumnGrade, 0.80, []string{"grade"}},
	{ColumnCertNumber, 0.80, []string{"cert", "certificate", "certification", "serial"}},
	{ColumnCardNumber, 0.80, []string{"number", "num", "no", "collector"}},
	{ColumnQuantity, 0.80, []string{"quantity", "qty", "count", "copies", "stock", "owned"}},
	{ColumnSetName, 0.80, []string{"set", "edition", "expansion", "series", "collection"}},
	{ColumnName, 0.85, []string{"name", "card", "product", "title", "pokemon"}},
	{ColumnCondition, 0.75, []string{"condition", "cond"}},
	{ColumnRarity, 0.75, []string{"rarity", "rare"}},
	{ColumnLanguage, 0.75, []string{"language", "lang", "idioma", "sprache"}},
	{ColumnImageURL, 0.75, []string{"image", "img", "picture", "photo", "scan"}},
	{ColumnNotes, 0.75, []string{"note", "notes", "comment", "remark", "memo", "description"}},
	{ColumnCategory, 0.75, []string{"category", "type", "kind"}},
}

// conditionVocabulary covers the condition grades seen across marketplace
// exports, including common abbreviations.
var conditionVocabulary = map[string]bool{
	"mint":              true,
	"near mint":         true,
	"nm":                true,
	"nm-mt":             true,
	"m":                 true,
	"lightly played":    true,
	"light played":      true,
	"lp":                true,
	"excellent":         true,
	"ex":                true,
	"moderately played": true,
	"mp":                true,
	"good":              true,
	"gd":                true,
	"played":            true,
	"pl":                true,
	"heavily played":    true,
	"hp":                true,
	"poor":              true,
	"damaged":           true,
	"dmg":               true,
	"sealed":            true,
	"neuwertig":         true,
	"bespielt":          true,
	"nueva":             true,
	"jugada":            true,
}

// gradingVocabulary covers grading company spellings and "not graded"
// synonyms used for data-driven inference.
var gradingVocabulary = map[string]bool{
	"psa":        true,
	"bgs":        true,
	"beckett":    true,
	"cgc":        true,
	"sgc":        true,
	"ace":        true,
	"ags":        true,
	"tag":        true,
	"raw":        true,
	"none":       true,
	"ungraded":   true,
	"not graded": true,
	"n/a":        true,
}

// rarityVocabulary covers rarity values for data-driven inference. Synonym
// grouping for matching lives in the match package.
var rarityVocabulary = map[string]bool{
	"common":                    true,
	"uncommon":                  true,
	"rare":                      true,
	"rare holo":                 true,
	"holo rare":                 true,
	"holofoil rare":             true,
	"reverse holo":              true,
	"double rare":               true,
	"ultra rare":                true,
	"secret rare":               true,
	"hyper rare":                true,
	"rainbow rare":              true,
	"amazing rare":              true,
	"radiant rare":              true,
	"illustration rare":         true,
	"special illustration rare": true,
	"shiny rare":                true,
	"promo":                     true,
	"black star promo":          true,
}
