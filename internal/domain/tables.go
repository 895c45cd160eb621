package domain

// Table names as the downstream SQL importer knows them.
const (
	TableCustomers          = "customers"
	TableCustomerDetails    = "customer_details"
	TableAccounts           = "accounts"
	TableCards              = "cards"
	TableTransactions       = "transactions"
	TableBranches           = "branches"
	TableEmployees          = "employees"
	TableLoans              = "loans"
	TableLoanPayments       = "loan_payments"
	TableMerchants          = "merchants"
	TableAuditLogs          = "audit_logs"
	TableExchangeRates      = "exchange_rates"
	TableInvestmentAccounts = "investment_accounts"
	TableFraudAlerts        = "fraud_alerts"
	TableUserLogins         = "user_logins"
)

// tableColumns mirrors the external DDL catalog: the exact business columns,
// in declaration order, per table. The two metadata fields are not listed
// because they never reach an export.
var tableColumns = map[string][]string{
	TableCustomers: {
		"customer_id", "first_name", "last_name", "email", "phone",
		"date_of_birth", "street", "city", "state", "zip_code", "country",
		"created_at",
	},
	TableCustomerDetails: {
		"customer_id", "employment_status", "annual_income", "credit_score",
		"marital_status", "education_level", "created_at",
	},
	TableAccounts: {
		"account_id", "customer_id", "account_number", "account_type",
		"balance", "currency", "status", "opened_date", "created_at",
	},
	TableCards: {
		"card_id", "customer_id", "account_id", "card_number", "card_type",
		"card_network", "expiration_date", "cvv", "credit_limit", "status",
		"created_at",
	},
	TableTransactions: {
		"transaction_id", "account_id", "card_id", "transaction_type",
		"amount", "currency", "transaction_date", "transaction_time",
		"description", "status", "created_at",
	},
	TableBranches: {
		"branch_id", "branch_name", "branch_code", "branch_type", "street",
		"city", "state", "zip_code", "country", "phone", "email",
		"manager_name", "opening_date", "created_at",
	},
	TableEmployees: {
		"employee_id", "branch_id", "first_name", "last_name", "email",
		"phone_extension", "role", "department", "salary", "hire_date",
		"manager_id", "status", "created_at",
	},
	TableLoans: {
		"loan_id", "customer_id", "account_id", "loan_type", "loan_amount",
		"interest_rate", "term_months", "start_date", "end_date",
		"monthly_payment", "remaining_balance", "status", "interest_type",
		"created_at",
	},
	TableLoanPayments: {
		"payment_id", "loan_id", "customer_id", "payment_number",
		"payment_date", "due_date", "amount_due", "principal_amount",
		"interest_amount", "total_paid", "status", "created_at",
	},
	TableMerchants: {
		"merchant_id", "merchant_name", "category", "mcc_code", "street",
		"city", "state", "zip_code", "country", "phone", "email", "website",
		"status", "created_at",
	},
	TableAuditLogs: {
		"audit_id", "user_id", "action_type", "entity_type", "entity_id",
		"action_date", "action_time", "ip_address", "user_agent",
		"status_code", "action_details", "error_message", "created_at",
	},
	TableExchangeRates: {
		"rate_id", "base_currency", "target_currency", "buy_rate",
		"sell_rate", "mid_rate", "rate_date", "valid_from", "valid_to",
		"source", "created_at",
	},
	TableInvestmentAccounts: {
		"investment_account_id", "customer_id", "account_id",
		"investment_type", "risk_tolerance", "account_status",
		"investment_strategy", "primary_asset_class", "opening_date",
		"current_balance", "total_deposits", "ytd_return_rate",
		"annual_return_rate", "management_fee_rate", "total_value",
		"is_managed_account", "created_at",
	},
	TableFraudAlerts: {
		"alert_id", "transaction_id", "account_id", "customer_id",
		"alert_timestamp", "detection_method", "fraud_reason", "fraud_type",
		"severity", "severity_score", "alert_status", "assigned_analyst_id",
		"resolution_date", "financial_loss", "is_false_positive", "created_at",
	},
	TableUserLogins: {
		"login_id", "customer_id", "login_timestamp", "ip_address",
		"device_type", "browser", "operating_system", "login_method",
		"login_status", "failure_reason", "session_duration_minutes",
		"geolocation", "is_vpn_used", "created_at",
	},
}

// Columns returns the catalog column order for a table, or nil for an
// unknown table name.
func Columns(table string) []string {
	return tableColumns[table]
}

// Dataset holds every generated collection for one run, keyed by struct
// field. Collections are assembled whole before any export happens.
type Dataset struct {
	Customers          []Record
	CustomerDetails    []Record
	Accounts           []Record
	Cards              []Record
	Transactions       []Record
	Branches           []Record
	Employees          []Record
	Loans              []Record
	LoanPayments       []Record
	Merchants          []Record
	AuditLogs          []Record
	ExchangeRates      []Record
	InvestmentAccounts []Record
	FraudAlerts        []Record
	UserLogins         []Record
}

// NamedCollection pairs a table name with its records.
type NamedCollection struct {
	Table   string
	Records []Record
}

// Tables returns all collections in export order. Order follows the
// generators' dependency order so foreign keys land before their referents'
// dependents during import.
func (d *Dataset) Tables() []NamedCollection {
	return []NamedCollection{
		{TableCustomers, d.Customers},
		{TableCustomerDetails, d.CustomerDetails},
		{TableBranches, d.Branches},
		{TableMerchants, d.Merchants},
		{TableExchangeRates, d.ExchangeRates},
		{TableAccounts, d.Accounts},
		{TableEmployees, d.Employees},
		{TableCards, d.Cards},
		{TableLoans, d.Loans},
		{TableLoanPayments, d.LoanPayments},
		{TableTransactions, d.Transactions},
		{TableInvestmentAccounts, d.InvestmentAccounts},
		{TableFraudAlerts, d.FraudAlerts},
		{TableUserLogins, d.UserLogins},
		{TableAuditLogs, d.AuditLogs},
	}
}
