package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"banksynth/internal/config"
	"banksynth/internal/domain"
	"banksynth/internal/generate"
)

// GenerationUseCase orchestrates a full dataset run: every generator in
// dependency order, then export through the injected writers.
type GenerationUseCase struct {
	cfg     config.Config
	writers []DatasetWriter
}

// NewGenerationUseCase creates a new instance of the usecase.
func NewGenerationUseCase(cfg config.Config, writers ...DatasetWriter) *GenerationUseCase {
	return &GenerationUseCase{cfg: cfg, writers: writers}
}

// Run generates the dataset, writes it through every configured writer, and
// returns the quality report. Generation itself cannot fail: corrupted
// upstream values degrade to skipped or defaulted records. Only the writers
// produce errors.
func (uc *GenerationUseCase) Run(ctx context.Context) (*domain.Dataset, *QualityReport, error) {
	dataset := uc.Generate()

	for _, collection := range dataset.Tables() {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("generation cancelled: %w", err)
		}
		for _, writer := range uc.writers {
			if err := writer.WriteCollection(ctx, collection); err != nil {
				return nil, nil, fmt.Errorf("could not write %s: %w", collection.Table, err)
			}
		}
	}

	return dataset, BuildQualityReport(dataset), nil
}

// Generate builds every collection in dependency order. Customers come
// first; everything else hangs off them directly or transitively.
func (uc *GenerationUseCase) Generate() *domain.Dataset {
	cfg := uc.cfg

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	dataset := &domain.Dataset{}

	log.Printf("generating %d customers", cfg.NumCustomers)
	customerGen := generate.NewCustomerGenerator(rnd, cfg.BadProbability(domain.TableCustomers))
	dataset.Customers, dataset.CustomerDetails = customerGen.Generate(cfg.NumCustomers)

	log.Printf("generating %d branches", cfg.NumBranches)
	branchGen := generate.NewBranchGenerator(rnd, cfg.BadProbability(domain.TableBranches))
	dataset.Branches = branchGen.Generate(cfg.NumBranches)

	log.Printf("generating %d employees", cfg.NumEmployees)
	employeeGen := generate.NewEmployeeGenerator(rnd, cfg.BadProbability(domain.TableEmployees))
	dataset.Employees = employeeGen.Generate(dataset.Branches, cfg.NumEmployees)

	log.Printf("generating %d merchants", cfg.NumMerchants)
	merchantGen := generate.NewMerchantGenerator(rnd, cfg.BadProbability(domain.TableMerchants))
	dataset.Merchants = merchantGen.Generate(cfg.NumMerchants)

	log.Printf("generating accounts")
	accountGen := generate.NewAccountGenerator(rnd, cfg.BadProbability(domain.TableAccounts))
	dataset.Accounts = accountGen.Generate(dataset.Customers,
		cfg.AccountsPerCustomerMin, cfg.AccountsPerCustomerMax)

	log.Printf("generating cards")
	cardGen := generate.NewCardGenerator(rnd, cfg.BadProbability(domain.TableCards))
	dataset.Cards = cardGen.Generate(dataset.Customers, dataset.Accounts,
		cfg.CardsPerCustomerMin, cfg.CardsPerCustomerMax)

	log.Printf("generating loans and payment schedules")
	loanGen := generate.NewLoanGenerator(rnd, cfg.BadProbability(domain.TableLoans))
	dataset.Loans, dataset.LoanPayments = loanGen.Generate(dataset.Customers, dataset.Accounts,
		cfg.LoansPerCustomerMin, cfg.LoansPerCustomerMax)

	log.Printf("generating transactions")
	txGen := generate.NewTransactionGenerator(rnd, cfg.BadProbability(domain.TableTransactions))
	dataset.Transactions = txGen.Generate(dataset.Accounts, dataset.Cards,
		cfg.TransactionsPerAccountMin, cfg.TransactionsPerAccountMax)

	log.Printf("generating %d days of exchange rates", cfg.ExchangeRateDays)
	rateGen := generate.NewExchangeRateGenerator(rnd, cfg.BadProbability(domain.TableExchangeRates))
	dataset.ExchangeRates = rateGen.Generate(cfg.ExchangeRateDays)

	log.Printf("generating investment accounts")
	investGen := generate.NewInvestmentAccountGenerator(rnd, cfg.BadProbability(domain.TableInvestmentAccounts))
	dataset.InvestmentAccounts = investGen.Generate(dataset.Customers, dataset.Accounts,
		cfg.NumInvestmentAccounts)

	log.Printf("generating fraud alerts at rate %.2f", cfg.FraudRate)
	fraudGen := generate.NewFraudAlertGenerator(rnd, cfg.FraudRate, cfg.BadProbability(domain.TableFraudAlerts))
	dataset.FraudAlerts = fraudGen.Generate(dataset.Transactions, dataset.Accounts)

	log.Printf("generating user logins")
	loginGen := generate.NewUserLoginGenerator(rnd,
		cfg.LoginsPerCustomerMin, cfg.LoginsPerCustomerMax,
		cfg.BadProbability(domain.TableUserLogins))
	dataset.UserLogins = loginGen.Generate(dataset.Customers)

	log.Printf("generating audit logs")
	auditGen := generate.NewAuditLogGenerator(rnd,
		cfg.AuditLogsPerUserMin, cfg.AuditLogsPerUserMax,
		cfg.BadProbability(domain.TableAuditLogs))
	dataset.AuditLogs = auditGen.Generate(dataset.Customers, dataset.Employees)

	return dataset
}
