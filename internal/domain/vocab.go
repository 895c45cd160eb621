package domain

// Fixed vocabularies the generators draw from. Values are plausible, not
// exhaustive; statistical plausibility is the only bar.

var FirstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Nancy", "Matthew", "Lisa", "Anthony", "Betty", "Mark", "Margaret",
	"Steven", "Sandra", "Andrew", "Ashley", "Kenneth", "Kimberly", "Joshua",
	"Emily", "Kevin", "Donna", "Brian", "Michelle",
}

var LastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
	"Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
}

var StreetNames = []string{
	"Main", "Oak", "Pine", "Maple", "Cedar", "Elm", "Washington", "Lincoln",
	"Jefferson", "Madison", "Lake", "Hill", "Park", "Sunset", "River",
	"Highland", "Broadway", "Church", "Willow", "Forest", "Ridge", "Meadow",
	"Spring", "Valley",
}

var StreetTypes = []string{"St", "Ave", "Blvd", "Rd", "Ln", "Dr", "Ct", "Pl", "Way"}

var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
}

var States = []string{"NY", "CA", "IL", "TX", "AZ", "PA", "FL", "OH", "GA", "WA"}

// ZipCodes maps the known cities onto a representative zip. Unknown cities
// get a random five-digit zip instead.
var ZipCodes = map[string]string{
	"New York":     "10001",
	"Los Angeles":  "90001",
	"Chicago":      "60601",
	"Houston":      "77001",
	"Phoenix":      "85001",
	"Philadelphia": "19101",
	"San Antonio":  "78201",
	"San Diego":    "92101",
	"Dallas":       "75201",
	"San Jose":     "95101",
}

var Countries = []string{"USA"}

var EmailDomains = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "company.com"}

var EmploymentTypes = []string{
	"Employed", "Self-Employed", "Unemployed", "Retired", "Student", "Part-Time",
}

var EducationLevels = []string{
	"High School", "Associate Degree", "Bachelor's Degree", "Master's Degree",
	"Doctorate", "Vocational",
}

var MaritalStatuses = []string{"Single", "Married", "Divorced", "Widowed"}

var AccountTypes = []string{"Savings", "Checking", "Money Market", "Certificate of Deposit"}

var AccountStatuses = []string{"Active", "Inactive", "Frozen", "Dormant", "Closed"}

var Currencies = []string{"USD", "EUR", "GBP", "CAD"}

var CardTypes = []string{"Credit", "Debit", "Prepaid"}

var CardNetworks = []string{"Visa", "MasterCard", "American Express", "Discover"}

var CardStatuses = []string{"Active", "Inactive", "Blocked", "Expired"}

// TransactionTypes is ordered to match the card-bearing account weight mix.
var TransactionTypes = []string{
	"Deposit", "Withdrawal", "Transfer", "Payment", "Purchase", "Refund",
}

var TransactionStatuses = []string{"Completed", "Pending", "Failed", "Reversed"}

var LoanTypes = []string{
	"Personal Loan", "Home Loan", "Auto Loan", "Education Loan",
	"Business Loan", "Credit Line", "Mortgage", "Overdraft",
}

var LoanStatuses = []string{
	"Active", "Paid Off", "Defaulted", "In Arrears", "Approved", "Rejected",
}

// LoanTerms are the offered terms, in months.
var LoanTerms = []int{12, 24, 36, 48, 60, 84, 120, 180, 240, 360}

var InterestTypes = []string{"Fixed", "Variable", "Floating"}

var EmployeeRoles = []string{
	"Teller", "Loan Officer", "Branch Manager", "Customer Service",
	"Operations", "Compliance",
}

var Departments = []string{
	"Retail Banking", "Corporate Banking", "Wealth Management", "Operations",
	"Risk Management",
}

var BranchTypes = []string{
	"Main Branch", "Regional Branch", "Sub-Branch", "Express Branch",
	"Digital Only",
}

var MerchantCategories = []string{
	"Retail", "Restaurant", "Travel", "Entertainment", "Utilities", "Healthcare",
}

var InvestmentTypes = []string{
	"Mutual Fund", "Stocks", "Bonds", "ETF", "Fixed Deposit", "Retirement Account",
}

var RiskTolerances = []string{"LOW", "MODERATE", "HIGH", "AGGRESSIVE"}

var InvestmentAccountStatuses = []string{"ACTIVE", "SUSPENDED", "CLOSED", "PENDING"}

var InvestmentStrategies = []string{
	"GROWTH", "INCOME", "BALANCED", "INDEX_TRACKING", "CAPITAL_PRESERVATION",
}

var AssetClasses = []string{
	"EQUITIES", "FIXED_INCOME", "REAL_ESTATE", "COMMODITIES", "CASH_EQUIVALENTS",
}

var DetectionMethods = []string{
	"RULE_ENGINE", "ML_MODEL", "MANUAL_REVIEW", "CUSTOMER_REPORT", "VELOCITY_CHECK",
}

var FraudReasons = []string{
	"UNUSUAL_AMOUNT", "UNUSUAL_LOCATION", "VELOCITY_EXCEEDED",
	"CARD_NOT_PRESENT", "ACCOUNT_TAKEOVER", "SUSPICIOUS_MERCHANT",
	"PATTERN_DEVIATION",
}

var FraudTypes = []string{
	"CARD_FRAUD", "ACCOUNT_FRAUD", "IDENTITY_THEFT", "MONEY_LAUNDERING",
	"PHISHING",
}

var AlertStatuses = []string{
	"OPEN", "INVESTIGATING", "ESCALATED", "RESOLVED", "FALSE_POSITIVE",
	"CONFIRMED_FRAUD",
}

// ClosedAlertStatuses are the statuses that carry a resolution date.
var ClosedAlertStatuses = []string{"RESOLVED", "FALSE_POSITIVE", "CONFIRMED_FRAUD"}

var DeviceTypes = []string{
	"iPhone 14", "Samsung Galaxy S23", "Google Pixel 7", "Windows Desktop",
	"MacBook Pro", "iPad", "Android Tablet", "Mobile Web", "Desktop Web",
	"Unknown Device",
}

var Browsers = []string{
	"Chrome", "Safari", "Firefox", "Edge", "Opera", "Brave", "Internet Explorer",
}

var OperatingSystems = []string{
	"iOS 16", "Android 13", "Windows 11", "macOS Ventura", "Linux",
	"Chrome OS", "Ubuntu", "Windows 10",
}

var LoginMethods = []string{"PASSWORD", "BIOMETRIC", "2FA", "SSO", "OTP", "HARDWARE_TOKEN"}

var LoginFailureReasons = []string{
	"INVALID_PASSWORD", "EXPIRED_PASSWORD", "ACCOUNT_LOCKED",
	"DEVICE_NOT_RECOGNIZED", "LOCATION_SUSPICIOUS", "2FA_FAILED",
	"SESSION_EXPIRED", "BRUTE_FORCE_ATTEMPT", "IP_BLOCKED",
}

var AuditActionTypes = []string{
	"LOGIN", "LOGOUT", "CREATE", "UPDATE", "DELETE", "VIEW", "APPROVE",
	"REJECT", "TRANSFER", "WITHDRAWAL", "PASSWORD_CHANGE", "PROFILE_UPDATE",
	"ACCOUNT_CREATE", "LOAN_APPLICATION", "CARD_ISSUE", "STATEMENT_GENERATE",
}

var AuditEntityTypes = []string{
	"CUSTOMER", "ACCOUNT", "TRANSACTION", "LOAN", "CARD", "EMPLOYEE",
	"BRANCH", "MERCHANT", "USER", "SYSTEM",
}

var AuditStatusCodes = []string{"SUCCESS", "FAILURE", "PENDING", "ERROR", "WARNING"}

var AuditActionDetails = []string{
	"Viewed account summary", "Updated contact information",
	"Initiated funds transfer", "Generated monthly statement",
	"Approved loan application", "Changed account password",
	"Downloaded transaction history", "Submitted card replacement request",
	"Modified notification preferences", "Closed savings account",
}

var AuditErrorMessages = []string{
	"Session expired", "Insufficient permissions", "Record not found",
	"Validation failed", "Upstream service timeout", "Internal server error",
	"Concurrent modification detected", "Rate limit exceeded",
}

var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_0 like Mac OS X) AppleWebKit/605.1.15",
	"Mozilla/5.0 (Android 11; Mobile) AppleWebKit/537.36",
	"PostmanRuntime/7.28.4",
	"curl/7.68.0",
}

var RateSources = []string{"Central Bank", "Reuters", "Bloomberg", "Internal"}

// CurrencyPair is an ordered base/target currency pair for exchange rates.
type CurrencyPair struct {
	Base   string
	Target string
}

// CurrencyPairs is the fixed set of quoted pairs.
var CurrencyPairs = []CurrencyPair{
	{"USD", "EUR"}, {"USD", "GBP"}, {"USD", "JPY"}, {"USD", "CAD"},
	{"USD", "AUD"}, {"USD", "CHF"}, {"EUR", "GBP"}, {"EUR", "JPY"},
	{"GBP", "JPY"}, {"AUD", "USD"}, {"CAD", "USD"},
}

// BaseRates anchors each quoted pair to a realistic mid rate.
var BaseRates = map[CurrencyPair]float64{
	{"USD", "EUR"}: 0.92,
	{"USD", "GBP"}: 0.79,
	{"USD", "JPY"}: 150.0,
	{"USD", "CAD"}: 1.35,
	{"USD", "AUD"}: 1.52,
	{"USD", "CHF"}: 0.88,
	{"EUR", "GBP"}: 0.86,
	{"EUR", "JPY"}: 163.0,
	{"GBP", "JPY"}: 190.0,
	{"AUD", "USD"}: 0.66,
	{"CAD", "USD"}: 0.74,
}
