package server_test

import (
	"io"
	"net"
	"net/http"
	"strconv"

	"votehall/internal/http/server"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func freePort() string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).NotTo(HaveOccurred())
	defer listener.Close()
	return strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
}

var _ = Describe("HTTPServer", func() {
	It("should serve until shut down", func() {
		port := freePort()
		handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("pong"))
		})

		srv := server.NewHTTP(zap.NewNop().Sugar(), handler, port)
		errChan := srv.Run()

		resp, err := http.Get("http://127.0.0.1:" + port + "/")
		Expect(err).NotTo(HaveOccurred())
		body, err := io.ReadAll(resp.Body)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Body.Close()).To(Succeed())
		Expect(string(body)).To(Equal("pong"))

		Expect(srv.Shutdown()).To(Succeed())
		Eventually(errChan).Should(Receive(MatchError(http.ErrServerClosed)))
	})

	It("should report a port that cannot be bound", func() {
		listener, err := net.Listen("tcp", ":0")
		Expect(err).NotTo(HaveOccurred())
		defer listener.Close()
		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)

		srv := server.NewHTTP(zap.NewNop().Sugar(), http.NotFoundHandler(), port)
		Eventually(srv.Run()).Should(Receive(HaveOccurred()))
	})
})
