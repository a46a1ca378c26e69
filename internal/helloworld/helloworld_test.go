package helloworld_test

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/lagertest"
	resource "github.com/concourse/go-resource"
	"github.com/concourse/go-resource/internal/helloworld"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("HelloWorld", func() {
	var (
		logger     *lagertest.TestLogger
		helloWorld helloworld.Resource
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("test")
		helloWorld = helloworld.New()
	})

	Describe("Check", func() {
		It("always returns the static version", func() {
			Expect(helloWorld.Check(logger, nil, nil)).To(Equal([]helloworld.Version{{Ver: "static"}}))
		})
	})

	Describe("In", func() {
		var (
			tempDir   string
			outputDir string

			source  *helloworld.Source
			version helloworld.Version
			params  *helloworld.InParams

			result resource.InResult[helloworld.Version, helloworld.InMetadata]
			inErr  error
		)

		BeforeEach(func() {
			var err error
			tempDir, err = ioutil.TempDir("", "hello-world")
			Expect(err).NotTo(HaveOccurred())

			outputDir = tempDir

			source = nil
			version = helloworld.Version{Ver: "static"}
			params = nil
		})

		AfterEach(func() {
			Expect(os.RemoveAll(tempDir)).To(Succeed())
		})

		JustBeforeEach(func() {
			result, inErr = helloWorld.In(logger, source, version, params, outputDir)
		})

		greeting := func() string {
			contents, err := ioutil.ReadFile(filepath.Join(outputDir, helloworld.GreetingFile))
			Expect(err).NotTo(HaveOccurred())
			return string(contents)
		}

		Context("with no source or params", func() {
			It("greets the world", func() {
				Expect(inErr).NotTo(HaveOccurred())
				Expect(greeting()).To(Equal("Hello, world!"))
				Expect(result.Metadata).To(Equal(&helloworld.InMetadata{Said: "Hello, world!"}))
			})
		})

		Context("with a name in the source", func() {
			BeforeEach(func() {
				source = &helloworld.Source{Name: "alice"}
				params = &helloworld.InParams{Action: helloworld.Hello}
			})

			It("greets them", func() {
				Expect(greeting()).To(Equal("Hello, alice!"))
				Expect(result.Version).To(Equal(helloworld.Version{Ver: "static"}))
			})
		})

		Context("with a name and action in the params", func() {
			BeforeEach(func() {
				source = &helloworld.Source{Name: "alice"}
				params = &helloworld.InParams{Name: "bob", Action: helloworld.Goodbye}
			})

			It("prefers the params", func() {
				Expect(greeting()).To(Equal("Goodbye, bob!"))
			})
		})

		Context("with an unknown version", func() {
			BeforeEach(func() {
				version = helloworld.Version{Ver: "v2"}
			})

			It("fails", func() {
				Expect(inErr).To(MatchError(ContainSubstring("no such version")))
			})
		})

		Context("when the output dir does not exist", func() {
			BeforeEach(func() {
				outputDir = filepath.Join(outputDir, "missing")
			})

			It("fails", func() {
				Expect(inErr).To(HaveOccurred())
			})
		})
	})

	Describe("Out", func() {
		BeforeEach(func() {
			helloWorld = helloworld.NewWithBuildMetadata(func() resource.BuildMetadata {
				return resource.BuildMetadata{
					ID:             "42",
					TeamName:       "main",
					ATCExternalURL: "https://ci.example.com",
				}
			})
		})

		It("returns the static version without metadata", func() {
			result := helloWorld.Out(logger, nil, nil, "/tmp")
			Expect(result.Version).To(Equal(helloworld.Version{Ver: "static"}))
			Expect(result.Metadata).To(BeNil())
		})

		It("logs the build it publishes from", func() {
			helloWorld.Out(logger, nil, nil, "/tmp")

			Expect(logger.LogMessages()).To(ContainElement("test.publishing"))
			Expect(logger.Logs()[0].Data).To(HaveKeyWithValue("build-id", "42"))
		})
	})

	Describe("Action", func() {
		It("accepts hello and goodbye", func() {
			var params helloworld.InParams
			Expect(json.Unmarshal([]byte(`{"action":"goodbye"}`), &params)).To(Succeed())
			Expect(params.Action).To(Equal(helloworld.Goodbye))
		})

		It("rejects anything else", func() {
			var params helloworld.InParams
			Expect(json.Unmarshal([]byte(`{"action":"wave"}`), &params)).To(MatchError(ContainSubstring("unknown action")))
		})
	})
})
