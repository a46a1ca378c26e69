package resource_test

import (
	"math/big"
	"time"

	resource "github.com/concourse/go-resource"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type mergeRequestMetadata struct {
	Commit string `json:"commit"`
	Author string `json:"author"`
	MRIID  int    `json:"mr_iid"`
}

type Links struct {
	Web string `json:"web"`
	API string `json:"api,omitempty"`
}

type richMetadata struct {
	Links

	Labels   []string          `json:"labels"`
	Owner    map[string]string `json:"owner"`
	Draft    bool              `json:"draft"`
	Reviewer *string           `json:"reviewer"`
	Note     string            `json:"note,omitempty"`
	Internal string            `json:"-"`
	Untagged float64

	secret string
}

type pipelineLinks struct {
	Web string `json:"web"`
}

type Approval struct {
	By string `json:"approved_by"`
}

type deploymentMetadata struct {
	pipelineLinks
	*Approval

	Title string `json:"title"`
}

type summaryMetadata struct {
	Summary string
}

func (m summaryMetadata) MetadataFields() []resource.MetadataField {
	return []resource.MetadataField{{Name: "summary", Value: m.Summary}}
}

var _ = Describe("FlattenMetadata", func() {
	var (
		metadata interface{}

		fields     []resource.MetadataField
		flattenErr error
	)

	JustBeforeEach(func() {
		fields, flattenErr = resource.FlattenMetadata(metadata)
	})

	Context("with string and integer fields", func() {
		BeforeEach(func() {
			metadata = mergeRequestMetadata{
				Commit: "sha",
				Author: "Han Solo",
				MRIID:  1,
			}
		})

		It("emits the fields in declaration order, with strings unquoted", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "commit", Value: "sha"},
				{Name: "author", Value: "Han Solo"},
				{Name: "mr_iid", Value: "1"},
			}))
		})
	})

	Context("with a pointer to the record", func() {
		BeforeEach(func() {
			metadata = &mergeRequestMetadata{Commit: "sha"}
		})

		It("flattens the record it points to", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(HaveLen(3))
			Expect(fields[0]).To(Equal(resource.MetadataField{Name: "commit", Value: "sha"}))
		})
	})

	Context("with nested and non-string values", func() {
		BeforeEach(func() {
			metadata = richMetadata{
				Links:    Links{Web: "https://example.com/mr/1"},
				Labels:   []string{"bug", "a<b"},
				Owner:    map[string]string{"name": "Leia"},
				Draft:    true,
				Internal: "hidden",
				Untagged: 1.5,
				secret:   "hidden",
			}
		})

		It("renders them as compact JSON", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "web", Value: "https://example.com/mr/1"},
				{Name: "labels", Value: `["bug","a<b"]`},
				{Name: "owner", Value: `{"name":"Leia"}`},
				{Name: "draft", Value: "true"},
				{Name: "reviewer", Value: "null"},
				{Name: "Untagged", Value: "1.5"},
			}))
		})
	})

	Context("with strings containing quotes and escapes", func() {
		BeforeEach(func() {
			metadata = struct {
				Message string `json:"message"`
			}{`say "hi"` + "\n"}
		})

		It("emits the raw string contents", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "message", Value: "say \"hi\"\n"},
			}))
		})
	})

	Context("with a time value", func() {
		BeforeEach(func() {
			metadata = struct {
				At time.Time `json:"at"`
			}{time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)}
		})

		It("uses the value's JSON encoding without the quotes", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "at", Value: "2020-01-02T03:04:05Z"},
			}))
		})
	})

	Context("with a field marshalled through a pointer receiver", func() {
		BeforeEach(func() {
			metadata = struct {
				Count big.Int `json:"count"`
			}{*big.NewInt(123)}
		})

		It("uses the field's own JSON encoding", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "count", Value: "123"},
			}))
		})

		Context("behind a pointer", func() {
			BeforeEach(func() {
				metadata = &struct {
					Count big.Float `json:"count"`
				}{*big.NewFloat(1.5)}
			})

			It("uses the field's own JSON encoding", func() {
				Expect(flattenErr).NotTo(HaveOccurred())
				Expect(fields).To(Equal([]resource.MetadataField{
					{Name: "count", Value: "1.5"},
				}))
			})
		})
	})

	Context("with an embedded struct of unexported type", func() {
		BeforeEach(func() {
			metadata = deploymentMetadata{
				pipelineLinks: pipelineLinks{Web: "https://example.com/pipelines/1"},
				Title:         "deploy",
			}
		})

		It("promotes its exported fields and skips the nil embedded pointer", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "web", Value: "https://example.com/pipelines/1"},
				{Name: "title", Value: "deploy"},
			}))
		})
	})

	Context("with an empty record", func() {
		BeforeEach(func() {
			metadata = struct{}{}
		})

		It("returns an empty, non-nil list", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).NotTo(BeNil())
			Expect(fields).To(BeEmpty())
		})
	})

	Context("with resource.Empty", func() {
		BeforeEach(func() {
			metadata = resource.Empty{}
		})

		It("returns an empty, non-nil list", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).NotTo(BeNil())
			Expect(fields).To(BeEmpty())
		})
	})

	Context("when the record converts itself", func() {
		BeforeEach(func() {
			metadata = summaryMetadata{Summary: "all green"}
		})

		It("uses its own fields", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{
				{Name: "summary", Value: "all green"},
			}))
		})
	})

	Context("with a list of fields", func() {
		BeforeEach(func() {
			metadata = []resource.MetadataField{{Name: "a", Value: "b"}}
		})

		It("passes them through", func() {
			Expect(flattenErr).NotTo(HaveOccurred())
			Expect(fields).To(Equal([]resource.MetadataField{{Name: "a", Value: "b"}}))
		})

		Context("behind a pointer", func() {
			BeforeEach(func() {
				metadata = &[]resource.MetadataField{{Name: "a", Value: "b"}}
			})

			It("passes them through", func() {
				Expect(flattenErr).NotTo(HaveOccurred())
				Expect(fields).To(Equal([]resource.MetadataField{{Name: "a", Value: "b"}}))
			})
		})
	})

	Context("with something other than a record", func() {
		BeforeEach(func() {
			metadata = map[string]string{"a": "b"}
		})

		It("errors", func() {
			Expect(flattenErr).To(BeAssignableToTypeOf(resource.ErrUnsupportedMetadata{}))
		})
	})

	Context("when a field cannot be encoded", func() {
		BeforeEach(func() {
			metadata = struct {
				Callback func() `json:"callback"`
			}{func() {}}
		})

		It("errors, naming the field", func() {
			Expect(flattenErr).To(HaveOccurred())
			Expect(flattenErr.Error()).To(ContainSubstring("callback"))
		})
	})
})
