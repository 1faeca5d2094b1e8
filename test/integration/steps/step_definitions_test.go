package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ledger-console/backend/internal/application/usecase/allocation"
	"github.com/ledger-console/backend/internal/application/usecase/auth"
	"github.com/ledger-console/backend/internal/application/usecase/businessunit"
	"github.com/ledger-console/backend/internal/application/usecase/category"
	"github.com/ledger-console/backend/internal/application/usecase/counterparty"
	"github.com/ledger-console/backend/internal/application/usecase/layout"
	"github.com/ledger-console/backend/internal/application/usecase/transaction"
	"github.com/ledger-console/backend/internal/application/usecase/user"
	"github.com/ledger-console/backend/internal/domain/entity"
	"github.com/ledger-console/backend/internal/domain/valueobject"
	"github.com/ledger-console/backend/internal/infra/server/router"
	"github.com/ledger-console/backend/internal/integration/adapters"
	"github.com/ledger-console/backend/internal/integration/cache"
	"github.com/ledger-console/backend/internal/integration/email"
	"github.com/ledger-console/backend/internal/integration/entrypoint/controller"
	"github.com/ledger-console/backend/internal/integration/entrypoint/middleware"
	"github.com/ledger-console/backend/internal/integration/persistence"
	"github.com/ledger-console/backend/internal/integration/persistence/model"
	"github.com/ledger-console/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri                   string
	headers               map[string]string
	client                *http.Client
	response              *response
	db                    *mock.Db
	serverPort            int
	accessToken           string
	refreshToken          string
	resetToken            string
	currentUserID         uuid.UUID
	currentCategoryID     uuid.UUID
	currentUnitID         uuid.UUID
	currentCounterpartyID uuid.UUID
	transactionIDs        []uuid.UUID
	lastTransactionID     uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testSnapshot *transaction.Snapshot
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("ledger_console", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"categories":            &model.CategoryModel{},
			"business_units":        &model.BusinessUnitModel{},
			"counterparties":        &model.CounterpartyModel{},
			"transactions":          &model.TransactionModel{},
			"email_queue":           &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a "([^"]*)" user exists with email "([^"]*)"$`, test.aRoleUserExistsWithEmail)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^I am logged in as "([^"]*)" with role "([^"]*)"$`, test.iAmLoggedInAsWithRole)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)

	// Reference data setup steps
	ctx.Given(`^a category exists with name "([^"]*)" and type "([^"]*)"$`, test.aCategoryExistsWithNameAndType)
	ctx.Given(`^a business unit exists with code "([^"]*)" and name "([^"]*)"$`, test.aBusinessUnitExistsWithCodeAndName)
	ctx.Given(`^a counterparty exists with name "([^"]*)" and type "([^"]*)"$`, test.aCounterpartyExistsWithNameAndType)

	// Transaction setup steps
	ctx.Given(`^a transaction exists with code "([^"]*)" and status "([^"]*)"$`, test.aTransactionExistsWithCodeAndStatus)
	ctx.Given(`^a transaction exists with code "([^"]*)" and status "([^"]*)" created by "([^"]*)"$`, test.aTransactionExistsWithCodeAndStatusCreatedBy)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.currentUserID = uuid.Nil
	t.currentCategoryID = uuid.Nil
	t.currentUnitID = uuid.Nil
	t.currentCounterpartyID = uuid.Nil
	t.transactionIDs = nil
	t.lastTransactionID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
	t.reloadSnapshot()
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			categoryRepo := persistence.NewCategoryRepository(testDB.DbConn)
			businessUnitRepo := persistence.NewBusinessUnitRepository(testDB.DbConn)
			counterpartyRepo := persistence.NewCounterpartyRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)
			transactionStore := persistence.NewTransactionStore(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			layoutStore := cache.NewLayoutStore(mock.NewRedis())
			emailService := email.NewService(emailQueueRepo)

			// Shared transaction collaborators
			snapshot := transaction.NewSnapshot(transactionStore)
			testSnapshot = snapshot
			ruleTable := entity.NewAllocationRuleTable(entity.DefaultAllocationRules())
			notifier := transaction.NewNotifier(emailService, userRepo, "http://localhost:5173")

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailService, "http://localhost:5173")
			resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

			// Create transaction use cases
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(snapshot)
			getTransactionUseCase := transaction.NewGetTransactionUseCase(snapshot)
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, ruleTable, userRepo, notifier)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, ruleTable)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionStore, snapshot, userRepo)
			submitTransactionUseCase := transaction.NewSubmitTransactionUseCase(transactionStore, snapshot, categoryRepo, counterpartyRepo, userRepo, notifier)
			approveTransactionUseCase := transaction.NewApproveTransactionUseCase(transactionStore, snapshot, userRepo, notifier)
			rejectTransactionUseCase := transaction.NewRejectTransactionUseCase(transactionStore, snapshot, userRepo, notifier)
			cancelTransactionUseCase := transaction.NewCancelTransactionUseCase(transactionStore, snapshot)

			// Create allocation use cases
			previewAllocationUseCase := allocation.NewPreviewAllocationUseCase(ruleTable)
			listRulesUseCase := allocation.NewListRulesUseCase(ruleTable)

			// Create category use cases
			listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
			createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
			updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
			deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

			// Create business unit use cases
			listBusinessUnitsUseCase := businessunit.NewListBusinessUnitsUseCase(businessUnitRepo)
			createBusinessUnitUseCase := businessunit.NewCreateBusinessUnitUseCase(businessUnitRepo)
			updateBusinessUnitUseCase := businessunit.NewUpdateBusinessUnitUseCase(businessUnitRepo)

			// Create counterparty use cases
			listCounterpartiesUseCase := counterparty.NewListCounterpartiesUseCase(counterpartyRepo)
			createCounterpartyUseCase := counterparty.NewCreateCounterpartyUseCase(counterpartyRepo)
			updateCounterpartyUseCase := counterparty.NewUpdateCounterpartyUseCase(counterpartyRepo)
			deleteCounterpartyUseCase := counterparty.NewDeleteCounterpartyUseCase(counterpartyRepo)

			// Create user administration use cases
			listUsersUseCase := user.NewListUsersUseCase(userRepo)
			changeRoleUseCase := user.NewChangeRoleUseCase(userRepo, tokenService)
			setStatusUseCase := user.NewSetStatusUseCase(userRepo, tokenService)

			// Create layout use cases
			getLayoutUseCase := layout.NewGetLayoutUseCase(layoutStore)
			saveLayoutUseCase := layout.NewSaveLayoutUseCase(layoutStore)
			resetLayoutUseCase := layout.NewResetLayoutUseCase(layoutStore)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
				forgotPasswordUseCase,
				resetPasswordUseCase,
			)

			transactionController := controller.NewTransactionController(
				listTransactionsUseCase,
				getTransactionUseCase,
				createTransactionUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
				submitTransactionUseCase,
				approveTransactionUseCase,
				rejectTransactionUseCase,
				cancelTransactionUseCase,
			)

			allocationController := controller.NewAllocationController(
				previewAllocationUseCase,
				listRulesUseCase,
			)

			categoryController := controller.NewCategoryController(
				listCategoriesUseCase,
				createCategoryUseCase,
				updateCategoryUseCase,
				deleteCategoryUseCase,
			)

			businessUnitController := controller.NewBusinessUnitController(
				listBusinessUnitsUseCase,
				createBusinessUnitUseCase,
				updateBusinessUnitUseCase,
			)

			counterpartyController := controller.NewCounterpartyController(
				listCounterpartiesUseCase,
				createCounterpartyUseCase,
				updateCounterpartyUseCase,
				deleteCounterpartyUseCase,
			)

			userController := controller.NewUserController(
				listUsersUseCase,
				changeRoleUseCase,
				setStatusUseCase,
			)

			layoutController := controller.NewLayoutController(
				getLayoutUseCase,
				saveLayoutUseCase,
				resetLayoutUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				transactionController,
				allocationController,
				categoryController,
				businessUnitController,
				counterpartyController,
				userController,
				layoutController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User", entity.UserRoleStaff)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User", entity.UserRoleStaff)
}

func (t *testContext) aRoleUserExistsWithEmail(role, email string) error {
	return t.createUser(email, "DefaultPass123!", "Test User", entity.UserRole(role))
}

func (t *testContext) createUser(email, password, name string, role entity.UserRole) error {
	var existing model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&existing).Error; err == nil {
		t.currentUserID = existing.ID
		return nil
	}

	userID := uuid.New()
	t.currentUserID = userID

	userModel := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		Role:         string(role),
		Status:       string(entity.UserStatusActive),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(userModel)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs switches the current logged in user to the specified email,
// creating a staff account if it does not exist yet.
func (t *testContext) iAmLoggedInAs(email string) error {
	return t.iAmLoggedInAsWithRole(email, string(entity.UserRoleStaff))
}

func (t *testContext) iAmLoggedInAsWithRole(email, role string) error {
	if err := t.createUser(email, "SecurePass123!", "Test User "+email, entity.UserRole(role)); err != nil {
		return err
	}

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	if userModel.Role != role {
		userModel.Role = role
		if err := t.db.DbConn.Save(&userModel).Error; err != nil {
			return err
		}
	}
	t.currentUserID = userModel.ID

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"role":       role,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "ledger-console",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      email,
		"role":       role,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "ledger-console",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	var existingToken model.RefreshTokenModel
	if err := t.db.DbConn.Where("user_id = ?", t.currentUserID).First(&existingToken).Error; err == nil {
		existingToken.Token = t.refreshToken
		existingToken.Invalidated = false
		existingToken.ExpiresAt = now.Add(7 * 24 * time.Hour)
		return t.db.DbConn.Save(&existingToken).Error
	}

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    userModel.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}

	result := t.db.DbConn.Create(resetTokenModel)
	return result.Error
}

func (t *testContext) aCategoryExistsWithNameAndType(name, categoryType string) error {
	categoryID := uuid.New()
	t.currentCategoryID = categoryID

	now := time.Now().UTC()
	categoryModel := &model.CategoryModel{
		ID:        categoryID,
		Name:      name,
		Type:      categoryType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(categoryModel)
	return result.Error
}

func (t *testContext) aBusinessUnitExistsWithCodeAndName(code, name string) error {
	unitID := uuid.New()
	t.currentUnitID = unitID

	now := time.Now().UTC()
	unitModel := &model.BusinessUnitModel{
		ID:        unitID,
		Code:      code,
		Name:      name,
		Status:    string(entity.BusinessUnitStatusActive),
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(unitModel)
	return result.Error
}

func (t *testContext) aCounterpartyExistsWithNameAndType(name, counterpartyType string) error {
	counterpartyID := uuid.New()
	t.currentCounterpartyID = counterpartyID

	now := time.Now().UTC()
	counterpartyModel := &model.CounterpartyModel{
		ID:        counterpartyID,
		Name:      name,
		Type:      counterpartyType,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result := t.db.DbConn.Create(counterpartyModel)
	return result.Error
}

func (t *testContext) aTransactionExistsWithCodeAndStatus(code, status string) error {
	return t.createTransaction(code, status, t.currentUserID)
}

func (t *testContext) aTransactionExistsWithCodeAndStatusCreatedBy(code, status, email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}
	return t.createTransaction(code, status, userModel.ID)
}

func (t *testContext) createTransaction(code, status string, createdBy uuid.UUID) error {
	transactionID := uuid.New()
	t.lastTransactionID = transactionID
	t.transactionIDs = append(t.transactionIDs, transactionID)

	transactionType := entity.TransactionTypeExpense
	switch code[0] {
	case 'T':
		transactionType = entity.TransactionTypeIncome
	case 'V':
		transactionType = entity.TransactionTypeLoan
	}

	now := time.Now().UTC()
	var submittedAt *time.Time
	if status != string(valueobject.ApprovalStatusDraft) {
		submitted := now.Add(-1 * time.Hour)
		submittedAt = &submitted
	}

	transactionModel := &model.TransactionModel{
		ID:             transactionID,
		Code:           code,
		Date:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Type:           string(transactionType),
		Category:       "Office Supplies",
		ObjectType:     string(entity.ObjectTypePartner),
		ObjectName:     "Acme Ltd",
		BusinessUnit:   "BU-North",
		Amount:         5000000,
		CostAllocation: string(entity.CostAllocationDirect),
		PaymentStatus:  string(entity.PaymentStatusUnpaid),
		ApprovalStatus: status,
		CreatedBy:      createdBy,
		SubmittedAt:    submittedAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if result := t.db.DbConn.Create(transactionModel); result.Error != nil {
		return result.Error
	}
	t.reloadSnapshot()
	return nil
}

// reloadSnapshot forces the server's transaction snapshot to pick up rows
// seeded directly through the database.
func (t *testContext) reloadSnapshot() {
	if testSnapshot != nil {
		_ = testSnapshot.Reload(context.Background())
	}
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{category_id}}", t.currentCategoryID.String())
	content = strings.ReplaceAll(content, "{{unit_id}}", t.currentUnitID.String())
	content = strings.ReplaceAll(content, "{{counterparty_id}}", t.currentCounterpartyID.String())
	content = strings.ReplaceAll(content, "{{user_id}}", t.currentUserID.String())
	content = strings.ReplaceAll(content, "{{transaction_id}}", t.lastTransactionID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the transaction ID from create responses
		if codeStr, hasCode := responseBody["code"].(string); hasCode && codeStr != "" {
			if idStr, ok := responseBody["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastTransactionID = id
					t.transactionIDs = append(t.transactionIDs, id)
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := formatValue(value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

// formatValue renders a decoded JSON value for comparison. Numbers decode as
// float64, which %v would print in exponent form for large amounts.
func formatValue(value any) string {
	if f, ok := value.(float64); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", value)
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entityModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entityModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
