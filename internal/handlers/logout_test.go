package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		mockSetup    func(m *MockLogouter)
		expectedCode int
	}{
		{
			name: "success",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any()).Return(nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "session clear failure",
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any()).Return(errors.New("redis down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			tt.mockSetup(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			rr := httptest.NewRecorder()

			NewLogoutHandler(mockSvc).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
		})
	}
}
