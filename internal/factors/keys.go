package factors

// Category names used by Entries, override files, and the factors command.
const (
	CategoryFuel            = "fuel"
	CategoryElectricity     = "electricity"
	CategoryGas             = "gas"
	CategoryWater           = "water"
	CategoryPublicTransport = "public_transport"
	CategoryAviation        = "aviation"
	CategoryWaste           = "waste"
	CategoryDiet            = "diet"
	CategoryMeatFrequency   = "meat_frequency"
	CategoryGoods           = "goods"
)

// Fuel keys, tCO2e per litre. FuelNaturalGas is per m³.
const (
	FuelGasoline        = "gasolina-comum"
	FuelPremiumGasoline = "gasolina-aditivada"
	FuelEthanol         = "etanol"
	FuelDiesel          = "diesel"
	FuelNaturalGas      = "gnv"
	FuelElectric        = "eletrico"
	FuelHybrid          = "hibrido"
)

// Gas keys: natural gas per m³, bottled LPG per 13 kg cylinder, piped LPG per kg.
const (
	GasNatural  = "gn"
	GasCylinder = "glp-botijao"
	GasPiped    = "glp-encanado"
)

// Aviation scopes and travel classes.
const (
	AviationDomestic      = "nacional"
	AviationInternational = "internacional"

	ClassEconomy  = "economica"
	ClassBusiness = "executiva"
	ClassFirst    = "primeira"
)

// Waste disposal methods and credits (tCO2e per kg).
const (
	WasteLandfill     = "aterro-sanitario"
	WasteIncineration = "incineracao"
	WasteOpenDump     = "lixao"
	WasteRecycling    = "reciclagem"
	WasteComposting   = "compostagem"
	WasteCoProcessing = "co-processamento"
)

// Diet types (tCO2e per person per year).
const (
	DietVegan       = "vegana"
	DietVegetarian  = "vegetariana"
	DietPescatarian = "pescatariana"
	DietFlexitarian = "flexitariana"
	DietOmnivore    = "onivora"
)

// Frequency vocabulary shared by meat, processed food, local food, and
// public transport answers.
const (
	FrequencyRarely       = "raramente"
	FrequencyMonthly      = "mensalmente"
	FrequencyOnceTwice    = "1-2-vezes"
	FrequencyThreeToFive  = "3-5-vezes"
	FrequencyDaily        = "diariamente"
	FrequencyWeekly       = "semanalmente"
	FrequencyFewTimes     = "poucas-vezes"
	FrequencyAlways       = "sempre"
	FrequencyAlmostAlways = "quase-sempre"
)

// Goods and services spend categories (tCO2e per R$ 1000).
const (
	GoodsElectronics = "eletronicos"
	GoodsClothing    = "vestuario"
	GoodsTravel      = "viagens"
	GoodsFurniture   = "moveis"
	GoodsAppliances  = "eletrodomesticos"
	GoodsFinancial   = "servicos-financeiros"
	GoodsOther       = "outros"
)

// SourceSolarPanels is the electricity source that receives the
// self-generation discount.
const SourceSolarPanels = "paineis-solares"
