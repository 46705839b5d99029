package jwt_test

import (
	"time"

	tokenIssuer "votehall/pkg/jwt"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("JWTService", func() {
	var (
		service *tokenIssuer.JWTService
		info    tokenIssuer.TokenInfo
	)

	BeforeEach(func() {
		service = tokenIssuer.NewJWTService([]byte("test-secret"))
		info = tokenIssuer.TokenInfo{
			UserName:   "alice",
			Subject:    "user-1",
			SessionID:  "session-1",
			Expiration: time.Hour,
		}
	})

	AfterEach(func() {
		tokenIssuer.TimeNow = time.Now
	})

	It("should round-trip the claims", func() {
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		claims, err := service.Validate(signed)
		Expect(err).NotTo(HaveOccurred())
		Expect(tokenIssuer.StringClaim(claims, "sub")).To(Equal("user-1"))
		Expect(tokenIssuer.StringClaim(claims, "jti")).To(Equal("session-1"))
		Expect(tokenIssuer.StringClaim(claims, "username")).To(Equal("alice"))
		Expect(tokenIssuer.StringClaim(claims, "missing")).To(BeEmpty())
	})

	It("should reject a token signed with another secret", func() {
		other := tokenIssuer.NewJWTService([]byte("other-secret"))
		signed, err := other.Sign(other.Generate(info))
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject a token with a non-HMAC algorithm", func() {
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "x"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		Expect(err).NotTo(HaveOccurred())

		_, err = service.Validate(unsigned)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should reject garbage", func() {
		_, err := service.Validate("not-a-token")
		Expect(err).To(MatchError(tokenIssuer.ErrTokenNotValid))
	})

	It("should report expired tokens", func() {
		tokenIssuer.TimeNow = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed, err := service.Sign(service.Generate(info))
		Expect(err).NotTo(HaveOccurred())
		tokenIssuer.TimeNow = time.Now

		_, err = service.Validate(signed)
		Expect(err).To(MatchError(tokenIssuer.ErrTokenExpired))
	})
})
