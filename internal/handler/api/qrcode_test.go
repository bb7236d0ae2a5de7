//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"qrlink/internal/handler/api"
	resdto "qrlink/internal/handler/dto/response"
	"qrlink/internal/pkg/errs"
	"qrlink/internal/usecase/commands"
	"qrlink/internal/usecase/queries"
	"qrlink/tests/common/builder"
	"qrlink/tests/common/httptest"
	"qrlink/tests/common/testutil"
	commandsmock "qrlink/tests/mock/commands"
	queriesmock "qrlink/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testShop = "test-shop.myshopify.com"

type QRCodeHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockQRCodeCommands
	mockQueries  *queriesmock.MockQRCodeQueries
	handler      *api.QRCodeHandler
}

func (s *QRCodeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockQRCodeCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockQRCodeQueries(s.mockCtrl)
	s.handler = api.NewQRCodeHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("shop", testShop)
		c.Next()
	}

	s.router.GET("/api/codes", authMiddleware, s.handler.List)
	s.router.POST("/api/codes", authMiddleware, s.handler.Create)
	s.router.GET("/api/codes/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/api/codes/:id", authMiddleware, s.handler.Update)
	s.router.GET("/codes/:id", s.handler.Detail)
}

func (s *QRCodeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQRCodeHandlerSuite(t *testing.T) {
	suite.Run(t, new(QRCodeHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestCreate() {
	url := "/api/codes"
	reqBody := builder.NewQRCodeBuilder().BuildUpsertRequestDTO()

	s.Run("success: returns 201 Created with the new id", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testShop).
			Return(&commands.CreateQRCodeResult{ID: 42}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusCreated, rec.Code)
		s.Contains(rec.Body.String(), `"id":42`)
		s.Equal("/api/codes/42", rec.Header().Get("Location"))
	})

	s.Run("validation failure: returns 422 with field details", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), testShop).
			Return(nil, &commands.ValidationError{Fields: map[string]string{
				"title":       "Please enter a title",
				"destination": "Please select a destination",
			}}).Times(1)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("title", ""), testutil.Field("destination", ""))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		s.Equal(http.StatusUnprocessableEntity, rec.Code)
		s.Contains(rec.Body.String(), "Please enter a title")
		s.Contains(rec.Body.String(), "Please select a destination")
	})

	s.Run("unauthorized: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestUpdate() {
	b := builder.NewQRCodeBuilder()
	reqBody := b.BuildUpsertRequestDTO()

	s.Run("success: returns 200 with the enriched record", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any(), testShop).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetEnriched(gomock.Any(), int64(1), testShop).
			Return(b.BuildEnrichedQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/codes/1", reqBody, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.QRCodeResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(int64(1), resp.ID)
		s.Equal("Spring Sale Tee", resp.ProductTitle)
	})

	s.Run("not found: foreign or missing id returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(9), gomock.Any(), testShop).
			Return(errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/codes/9", reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad id: returns 400 for a non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/api/codes/abc", reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "Invalid code id")
	})
}

// ================================================================================
// TestGet / TestList
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestGet() {
	b := builder.NewQRCodeBuilder()

	s.Run("success: returns the enriched record", func() {
		s.mockQueries.EXPECT().GetEnriched(gomock.Any(), int64(1), testShop).
			Return(b.BuildEnrichedQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/codes/1", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.QRCodeResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(b.Title, resp.Title)
		s.Equal("data:image/png;base64,aGVsbG8=", resp.Image)
	})

	s.Run("not found: returns 404", func() {
		s.mockQueries.EXPECT().GetEnriched(gomock.Any(), int64(7), testShop).
			Return(nil, errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/codes/7", nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad id: zero is rejected before the usecase runs", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/codes/0", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *QRCodeHandlerTestSuite) TestList() {
	b := builder.NewQRCodeBuilder()

	s.Run("success: returns the shop's codes", func() {
		s.mockQueries.EXPECT().ListByShop(gomock.Any(), testShop).
			Return([]*queries.EnrichedQRCode{b.BuildEnrichedQuery()}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/codes", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"qr_codes"`)
		s.Contains(rec.Body.String(), b.Title)
	})

	s.Run("unauthorized: returns 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/codes", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestDetail
// ================================================================================

func (s *QRCodeHandlerTestSuite) TestDetail() {
	b := builder.NewQRCodeBuilder()

	s.Run("success: public detail needs no token", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), int64(1)).
			Return(b.BuildDetailQuery(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/codes/1", nil, "")

		s.Equal(http.StatusOK, rec.Code)
		var resp resdto.QRCodeDetailResponse
		_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
		s.Equal(b.Title, resp.Title)
		s.Contains(resp.Image, "data:image/png;base64,")
	})

	s.Run("not found: returns 404", func() {
		s.mockQueries.EXPECT().GetDetail(gomock.Any(), int64(99)).
			Return(nil, errs.ErrQRCodeNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/codes/99", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
