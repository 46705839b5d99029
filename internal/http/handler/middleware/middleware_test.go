package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"votehall/internal/core"
	"votehall/internal/http/handler/middleware"
	"votehall/internal/http/handler/middleware/fake"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var _ = Describe("Middleware", func() {
	var (
		w   *httptest.ResponseRecorder
		req *http.Request
	)

	BeforeEach(func() {
		w = httptest.NewRecorder()
		req = httptest.NewRequest(http.MethodGet, "/nominees", nil)
	})

	Describe("RequestID", func() {
		var seen string

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				seen = middleware.RequestIDFrom(r.Context())
			})
			middleware.NewRequestIDMiddleware().RequestID(next).ServeHTTP(w, req)
		})

		When("the request carries no id", func() {
			It("should generate one and echo it", func() {
				Expect(uuid.Validate(seen)).To(Succeed())
				Expect(w.Header().Get(middleware.RequestIDHeader)).To(Equal(seen))
			})
		})

		When("the request carries a valid id", func() {
			var incoming string

			BeforeEach(func() {
				incoming = uuid.NewString()
				req.Header.Set(middleware.RequestIDHeader, incoming)
			})

			It("should keep it", func() {
				Expect(seen).To(Equal(incoming))
			})
		})

		When("the request carries garbage", func() {
			BeforeEach(func() {
				req.Header.Set(middleware.RequestIDHeader, "<script>")
			})

			It("should replace it", func() {
				Expect(seen).NotTo(Equal("<script>"))
				Expect(uuid.Validate(seen)).To(Succeed())
			})
		})
	})

	Describe("Logging", func() {
		It("should log the status written by the handler", func() {
			observed, logs := observer.New(zapcore.InfoLevel)
			logger := zap.New(observed).Sugar()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusConflict)
			})
			middleware.NewLoggingMiddleware(logger).Logging(next).ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(logs.Len()).To(Equal(1))
			fields := logs.All()[0].ContextMap()
			Expect(fields).To(HaveKeyWithValue("status", int64(http.StatusConflict)))
			Expect(fields).To(HaveKeyWithValue("method", http.MethodGet))
			Expect(fields).To(HaveKeyWithValue("path", "/nominees"))
		})
	})

	Describe("Session", func() {
		var (
			fakeAuth  *fake.Authenticator
			principal core.Principal
		)

		BeforeEach(func() {
			fakeAuth = new(fake.Authenticator)
			principal = core.Principal{}
		})

		JustBeforeEach(func() {
			next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				principal = middleware.PrincipalFrom(r.Context())
			})
			middleware.NewSessionMiddleware(zap.NewNop().Sugar(), fakeAuth, false).Session(next).ServeHTTP(w, req)
		})

		When("there is no session cookie", func() {
			It("should continue anonymously", func() {
				Expect(principal.Authenticated()).To(BeFalse())
				Expect(fakeAuth.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the session cookie is valid", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
				fakeAuth.AuthenticateReturns(core.Principal{UserID: "user-1", Username: "alice"}, nil)
			})

			It("should attach the principal", func() {
				Expect(principal.UserID).To(Equal("user-1"))
				_, token := fakeAuth.AuthenticateArgsForCall(0)
				Expect(token).To(Equal("signed.token"))
			})
		})

		When("the session has ended", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
				fakeAuth.AuthenticateReturns(core.Principal{}, core.ErrAuthentication)
			})

			It("should continue anonymously and clear the cookie", func() {
				Expect(principal.Authenticated()).To(BeFalse())
				cookies := w.Result().Cookies()
				Expect(cookies).To(HaveLen(1))
				Expect(cookies[0].Name).To(Equal(middleware.SessionCookie))
				Expect(cookies[0].MaxAge).To(BeNumerically("<", 0))
			})
		})

		When("the session lookup fails", func() {
			BeforeEach(func() {
				req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "signed.token"})
				fakeAuth.AuthenticateReturns(core.Principal{}, errors.New("db down"))
			})

			It("should continue anonymously and keep the cookie", func() {
				Expect(principal.Authenticated()).To(BeFalse())
				Expect(w.Result().Cookies()).To(BeEmpty())
			})
		})
	})

	Describe("PrincipalFrom", func() {
		It("should return the stored principal", func() {
			ctx := middleware.WithPrincipal(context.Background(), core.Principal{UserID: "u"})
			Expect(middleware.PrincipalFrom(ctx).UserID).To(Equal("u"))
		})
	})
})
