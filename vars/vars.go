package vars

var (
	D1_ACCOUNT_ID  = ""
	D1_API_TOKEN   = ""
	D1_DATABASE_ID = ""
)
