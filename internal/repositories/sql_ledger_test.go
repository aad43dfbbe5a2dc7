package repositories

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/sellerdesk/go-fin-ledger/internal/common"
	"github.com/sellerdesk/go-fin-ledger/internal/models"
)

func TestLedgerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ledgerRepoTestSuite))
}

type ledgerRepoTestSuite struct {
	sqlRepoSuite
}

func (s *ledgerRepoTestSuite) TestPayable_Create() {
	paid := fixedTime
	in := models.CreatePayableIn{
		TenantID:       "tenant-a",
		DueDate:        fixedTime,
		CompetenceDate: fixedTime,
		Description:    "Energia Eletrica",
		Reference:      common.NullString("AB124"),
		Amount:         decimal.RequireFromString("89.90"),
		SupplierID:     "sup-1",
		BankAccount:    common.NullString("Conta - Itau"),
		IsPaid:         true,
		PaidDate:       &paid,
	}

	testCases := []struct {
		name    string
		doMock  func()
		wantErr bool
	}{
		{
			name: "happy path",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryPayableCreate)).
					WithArgs("tenant-a", fixedTime, fixedTime, "Energia Eletrica", "AB124",
						"89.9", "sup-1", "Conta - Itau", true, fixedTime).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow("p-1", fixedTime, fixedTime))
			},
		},
		{
			name: "error scan row",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryPayableCreate)).
					WillReturnRows(sqlmock.NewRows([]string{"InvalidColumn"}).AddRow(nil))
			},
			wantErr: true,
		},
		{
			name: "error db",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryPayableCreate)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.doMock()

			got, err := s.repo.GetPayableRepository().Create(context.Background(), &in)
			assert.Equal(t, tc.wantErr, err != nil)
			if !tc.wantErr {
				assert.Equal(t, "p-1", got.ID)
				assert.Equal(t, "AB124", *got.Reference)
				assert.True(t, got.Amount.Equal(in.Amount))
			}

			s.expectationsMet(t)
		})
	}
}

func (s *ledgerRepoTestSuite) TestPayable_Create_NullReference() {
	in := models.CreatePayableIn{TenantID: "tenant-a", Amount: decimal.NewFromInt(5)}

	s.mock.ExpectQuery(regexp.QuoteMeta(queryPayableCreate)).
		WithArgs("tenant-a", sqlmock.AnyArg(), sqlmock.AnyArg(), "", nil, "5", "", nil, false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("p-2", fixedTime, fixedTime))

	got, err := s.repo.GetPayableRepository().Create(context.Background(), &in)
	assert.NoError(s.T(), err)
	assert.Nil(s.T(), got.Reference)
	s.expectationsMet(s.T())
}

func (s *ledgerRepoTestSuite) TestReceivable_Create() {
	in := models.CreateReceivableIn{
		TenantID:    "tenant-a",
		ReceiptDate: fixedTime,
		Customer:    models.ImportedCustomerName,
		Description: "Pagamento cliente [FITID:AB123]",
		Amount:      decimal.RequireFromString("150.00"),
		IsPaid:      true,
		PaidDate:    &fixedTime,
	}

	testCases := []struct {
		name    string
		doMock  func()
		wantErr bool
	}{
		{
			name: "happy path",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryReceivableCreate)).
					WithArgs("tenant-a", fixedTime, models.ImportedCustomerName,
						"Pagamento cliente [FITID:AB123]", "150", nil, true, fixedTime).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
						AddRow("r-1", fixedTime, fixedTime))
			},
		},
		{
			name: "error db",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryReceivableCreate)).
					WillReturnError(assert.AnError)
			},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.doMock()

			got, err := s.repo.GetReceivableRepository().Create(context.Background(), &in)
			assert.Equal(t, tc.wantErr, err != nil)
			if !tc.wantErr {
				assert.Equal(t, "r-1", got.ID)
				assert.Equal(t, models.ImportedCustomerName, got.Customer)
			}

			s.expectationsMet(t)
		})
	}
}

func (s *ledgerRepoTestSuite) TestSupplier_GetOrCreate() {
	s.repo = NewSQLRepository(s.db, s.db, configForTest())
	repo := s.repo.GetSupplierRepository()

	s.mock.ExpectQuery(regexp.QuoteMeta(querySupplierUpsert)).
		WithArgs("tenant-a", models.ImportedSupplierName).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sup-1"))

	id, err := repo.GetOrCreate(context.Background(), "tenant-a", models.ImportedSupplierName)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "sup-1", id)

	// cached, no second query
	id, err = repo.GetOrCreate(context.Background(), "tenant-a", models.ImportedSupplierName)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "sup-1", id)

	// other tenant has its own supplier
	s.mock.ExpectQuery(regexp.QuoteMeta(querySupplierUpsert)).
		WithArgs("tenant-b", models.ImportedSupplierName).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sup-2"))

	id, err = repo.GetOrCreate(context.Background(), "tenant-b", models.ImportedSupplierName)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "sup-2", id)

	s.expectationsMet(s.T())
}

func (s *ledgerRepoTestSuite) TestSupplier_GetOrCreate_Error() {
	s.mock.ExpectQuery(regexp.QuoteMeta(querySupplierUpsert)).
		WithArgs("tenant-c", models.ImportedSupplierName).
		WillReturnError(assert.AnError)

	_, err := s.repo.GetSupplierRepository().GetOrCreate(context.Background(), "tenant-c", models.ImportedSupplierName)
	assert.ErrorIs(s.T(), err, assert.AnError)
	s.expectationsMet(s.T())
}

func (s *ledgerRepoTestSuite) TestBankAccount_GetActiveByID() {
	testCases := []struct {
		name    string
		doMock  func()
		want    *models.BankAccount
		wantErr error
	}{
		{
			name: "found",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryBankAccountGetActiveByID)).
					WithArgs("ba-1", "tenant-a").
					WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "bank_name", "is_active"}).
						AddRow("ba-1", "tenant-a", "Conta PJ", "Itau", true))
			},
			want: &models.BankAccount{ID: "ba-1", TenantID: "tenant-a", Name: "Conta PJ", BankName: "Itau", IsActive: true},
		},
		{
			name: "not found",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryBankAccountGetActiveByID)).
					WithArgs("ba-1", "tenant-a").
					WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "name", "bank_name", "is_active"}))
			},
			wantErr: common.ErrDataNotFound,
		},
		{
			name: "error db",
			doMock: func() {
				s.mock.ExpectQuery(regexp.QuoteMeta(queryBankAccountGetActiveByID)).
					WillReturnError(assert.AnError)
			},
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			tc.doMock()

			got, err := s.repo.GetBankAccountRepository().GetActiveByID(context.Background(), "tenant-a", "ba-1")
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, got)

			s.expectationsMet(t)
		})
	}
}

func (s *ledgerRepoTestSuite) TestAuditHistory_Create() {
	in := models.CreateAuditHistoryIn{
		TenantID:   "tenant-a",
		EntityType: models.AuditEntityReceivable,
		EntityID:   "r-1",
		Action:     models.AuditActionCreate,
		Origin:     models.AuditOriginImport,
		Payload:    []byte(`{"fitid":"AB123"}`),
	}

	testCases := []struct {
		name    string
		result  driver.Result
		dbErr   error
		wantErr error
	}{
		{
			name:   "happy path",
			result: sqlmock.NewResult(0, 1),
		},
		{
			name:    "no rows affected",
			result:  sqlmock.NewResult(0, 0),
			wantErr: common.ErrNoRowsAffected,
		},
		{
			name:    "error db",
			dbErr:   assert.AnError,
			wantErr: assert.AnError,
		},
	}

	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			exp := s.mock.ExpectExec(regexp.QuoteMeta(queryAuditHistoryCreate)).
				WithArgs("tenant-a", "receivable", "r-1", "create", "import", []byte(`{"fitid":"AB123"}`))
			if tc.dbErr != nil {
				exp.WillReturnError(tc.dbErr)
			} else {
				exp.WillReturnResult(tc.result)
			}

			err := s.repo.GetAuditHistoryRepository().Create(context.Background(), &in)
			assert.ErrorIs(t, err, tc.wantErr)

			s.expectationsMet(t)
		})
	}
}
