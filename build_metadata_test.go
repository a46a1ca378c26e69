package resource_test

import (
	resource "github.com/concourse/go-resource"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ReadBuildMetadataFrom", func() {
	var (
		environ map[string]string

		metadata resource.BuildMetadata
		readErr  error
	)

	BeforeEach(func() {
		environ = map[string]string{
			"BUILD_ID":         "42",
			"BUILD_TEAM_NAME":  "main",
			"ATC_EXTERNAL_URL": "https://ci.example.com",
		}
	})

	JustBeforeEach(func() {
		metadata, readErr = resource.ReadBuildMetadataFrom(environ)
	})

	Context("with only the required variables", func() {
		It("leaves the optional fields absent", func() {
			Expect(readErr).NotTo(HaveOccurred())
			Expect(metadata).To(Equal(resource.BuildMetadata{
				ID:             "42",
				TeamName:       "main",
				ATCExternalURL: "https://ci.example.com",
			}))
		})
	})

	Context("with every variable", func() {
		BeforeEach(func() {
			environ["BUILD_NAME"] = "7"
			environ["BUILD_JOB_NAME"] = "unit"
			environ["BUILD_PIPELINE_NAME"] = "release"
			environ["BUILD_PIPELINE_INSTANCE_VARS"] = `{"branch":"main","shard":2}`
		})

		It("reads them all", func() {
			Expect(readErr).NotTo(HaveOccurred())
			Expect(metadata).To(Equal(resource.BuildMetadata{
				ID:           "42",
				Name:         "7",
				JobName:      "unit",
				PipelineName: "release",
				PipelineInstanceVars: map[string]interface{}{
					"branch": "main",
					"shard":  float64(2),
				},
				TeamName:       "main",
				ATCExternalURL: "https://ci.example.com",
			}))
		})
	})

	Context("when the instance vars are not a JSON object", func() {
		BeforeEach(func() {
			environ["BUILD_PIPELINE_INSTANCE_VARS"] = `{not json`
		})

		It("treats them as absent", func() {
			Expect(readErr).NotTo(HaveOccurred())
			Expect(metadata.PipelineInstanceVars).To(BeNil())
		})
	})

	for _, name := range []string{"BUILD_ID", "BUILD_TEAM_NAME", "ATC_EXTERNAL_URL"} {
		name := name

		Context("when "+name+" is missing", func() {
			BeforeEach(func() {
				delete(environ, name)
			})

			It("errors, naming the variable", func() {
				Expect(readErr).To(HaveOccurred())
				Expect(readErr.Error()).To(Equal("environment variable " + name + " should be present"))
			})
		})
	}

	Context("when every required variable is missing", func() {
		BeforeEach(func() {
			environ = map[string]string{"BUILD_NAME": "7"}
		})

		It("reports all of them on one line", func() {
			Expect(readErr).To(HaveOccurred())
			Expect(readErr.Error()).To(Equal(
				"environment variable BUILD_ID should be present; " +
					"environment variable BUILD_TEAM_NAME should be present; " +
					"environment variable ATC_EXTERNAL_URL should be present",
			))
		})
	})
})
