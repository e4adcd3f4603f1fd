package constant

const (
	ProductionEnvironment  = "production"
	DevelopmentEnvironment = "development"

	// USD-M futures testnet. Live trading is out of scope for this tool.
	DefaultBaseURL = "https://testnet.binancefuture.com"

	DefaultRecvWindow  = int64(5000)
	DefaultLeverage    = 10
	DefaultLogFilePath = "logs/bot.log"
)
