package view_test

import (
	"bytes"
	"time"

	"votehall/internal/core"
	"votehall/internal/http/payload"
	"votehall/internal/http/view"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Renderer", func() {
	var (
		renderer *view.Renderer
		buf      *bytes.Buffer
		alice    core.Principal
		admin    core.Principal
	)

	BeforeEach(func() {
		var err error
		renderer, err = view.NewRenderer()
		Expect(err).NotTo(HaveOccurred())

		buf = new(bytes.Buffer)
		alice = core.Principal{UserID: "user-1", Username: "alice"}
		admin = core.Principal{UserID: "admin-1", Username: "root", IsAdmin: true}
	})

	It("should reject unknown pages", func() {
		err := renderer.Render(buf, "missing", view.Page{})
		Expect(err).To(MatchError(ContainSubstring("unknown page")))
	})

	It("should render anonymous navigation", func() {
		err := renderer.Render(buf, view.PageLogin, view.Page{Title: "Log in"})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`href="/register"`))
		Expect(buf.String()).NotTo(ContainSubstring(`action="/logout"`))
	})

	It("should show admin links only to administrators", func() {
		Expect(renderer.Render(buf, view.PageCategories, view.Page{Title: "Results", Principal: alice})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("Signed in as alice"))
		Expect(buf.String()).NotTo(ContainSubstring("/admin/votes"))

		buf.Reset()
		Expect(renderer.Render(buf, view.PageCategories, view.Page{Title: "Results", Principal: admin})).To(Succeed())
		Expect(buf.String()).To(ContainSubstring("/admin/votes"))
	})

	It("should echo form values and field errors", func() {
		err := renderer.Render(buf, view.PageRegister, view.Page{
			Title:  "Register",
			Form:   payload.RegisterRequest{Username: "alice", Email: "alice@example.com"},
			Fields: map[string]string{"password": "must contain a digit"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring(`value="alice"`))
		Expect(buf.String()).To(ContainSubstring("must contain a digit"))
	})

	It("should escape user supplied content", func() {
		err := renderer.Render(buf, view.PageNominee, view.Page{
			Title: "<b>Cats</b>",
			Data:  core.Nominee{ID: "n-1", Name: "<b>Cats</b>", Category: "Pets"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).NotTo(ContainSubstring("<b>Cats</b>"))
		Expect(buf.String()).To(ContainSubstring("&lt;b&gt;Cats&lt;/b&gt;"))
	})

	It("should render ranked results", func() {
		err := renderer.Render(buf, view.PageResults, view.Page{
			Title: "Results: Pets",
			Data: core.Results{
				Category:   "Pets",
				TotalVotes: 3,
				Standings: []core.Standing{
					{Rank: 1, NomineeID: "n-1", Name: "Cats", Votes: 2},
					{Rank: 2, NomineeID: "n-2", Name: "Dogs", Votes: 1},
				},
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(MatchRegexp(`(?s)Cats.*Dogs`))
		Expect(buf.String()).To(ContainSubstring("3 vote(s) cast in Pets"))
	})

	It("should render every page with empty data", func() {
		pages := map[string]any{
			view.PageNominees:    view.NomineesData{},
			view.PageNomineeForm: []string{},
			view.PageMyVotes:     []core.VoteRecord{{NomineeName: "Cats", Category: "Pets", CastAt: time.Now()}},
			view.PageAdminVotes:  view.AdminVotesData{Category: "Pets"},
			view.PageError:       nil,
		}
		for page, data := range pages {
			buf.Reset()
			Expect(renderer.Render(buf, page, view.Page{Title: page, Principal: admin, Data: data})).To(Succeed(), page)
		}
	})
})
