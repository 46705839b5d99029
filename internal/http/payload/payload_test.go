package payload_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"votehall/internal/http/payload"

	"github.com/google/uuid"
	"github.com/jellydator/validation"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func formRequest(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	Describe("VoteRequest", func() {
		It("should decode a valid nominee id", func() {
			nomineeID := uuid.NewString()
			var vote payload.VoteRequest

			err := dv.DecodeAndValidateForm(formRequest(url.Values{"nominee_id": {nomineeID}}), &vote)
			Expect(err).NotTo(HaveOccurred())
			Expect(vote.NomineeID).To(Equal(nomineeID))
		})

		It("should reject a malformed nominee id", func() {
			var vote payload.VoteRequest

			err := dv.DecodeAndValidateForm(formRequest(url.Values{"nominee_id": {"42"}}), &vote)
			var fieldErrs validation.Errors
			Expect(errors.As(err, &fieldErrs)).To(BeTrue())
			Expect(fieldErrs).To(HaveKey("nominee_id"))
		})

		It("should reject a missing nominee id", func() {
			var vote payload.VoteRequest

			err := dv.DecodeAndValidateForm(formRequest(url.Values{}), &vote)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("RegisterRequest", func() {
		var values url.Values

		BeforeEach(func() {
			values = url.Values{
				"username":         {"alice"},
				"email":            {"alice@example.com"},
				"password":         {"wonderland1"},
				"password_confirm": {"wonderland1"},
				"csrf":             {"ignored"},
			}
		})

		It("should decode the form and ignore unknown fields", func() {
			var reg payload.RegisterRequest

			err := dv.DecodeAndValidateForm(formRequest(values), &reg)
			Expect(err).NotTo(HaveOccurred())
			Expect(reg.ToRegistration().Username).To(Equal("alice"))
			Expect(reg.ToRegistration().Email).To(Equal("alice@example.com"))
		})

		It("should reject mismatching passwords", func() {
			values.Set("password_confirm", "wonderland2")
			var reg payload.RegisterRequest

			err := dv.DecodeAndValidateForm(formRequest(values), &reg)
			var fieldErrs validation.Errors
			Expect(errors.As(err, &fieldErrs)).To(BeTrue())
			Expect(fieldErrs).To(HaveKey("password_confirm"))
		})
	})

	Describe("LoginRequest", func() {
		It("should require both fields", func() {
			var login payload.LoginRequest

			err := dv.DecodeAndValidateForm(formRequest(url.Values{"username": {"alice"}}), &login)
			var fieldErrs validation.Errors
			Expect(errors.As(err, &fieldErrs)).To(BeTrue())
			Expect(fieldErrs).To(HaveKey("password"))
			Expect(fieldErrs).NotTo(HaveKey("username"))
		})
	})

	Describe("NomineeRequest", func() {
		It("should decode without validating", func() {
			var nominee payload.NomineeRequest

			err := dv.DecodeAndValidateForm(formRequest(url.Values{"category": {"Pets"}}), &nominee)
			Expect(err).NotTo(HaveOccurred())
			Expect(nominee.ToDraft().Category).To(Equal("Pets"))
			Expect(nominee.ToDraft().Name).To(BeEmpty())
		})
	})
})
