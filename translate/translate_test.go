package translate_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"golang.org/x/text/language"

	"github.com/sarchlab/sicxe/translate"
)

var _ = Describe("Translate", func() {
	AfterEach(func() {
		translate.SetLanguage(language.Korean)
	})

	It("should default to Korean", func() {
		Expect(translate.Language()).To(Equal(language.Korean))
		Expect(translate.From("error: %v", "boom")).To(Equal("에러: boom"))
	})

	It("should switch to English", func() {
		Expect(translate.SetLanguage(language.English)).To(Equal(language.English))
		Expect(translate.Language()).To(Equal(language.English))
		Expect(translate.From("error: %v", "boom")).To(Equal("error: boom"))
		Expect(translate.From("Hex input : ")).To(Equal("Hex input : "))
	})

	It("should match regional variants", func() {
		Expect(translate.SetLanguage(language.MustParse("en-GB"))).To(Equal(language.English))
		Expect(translate.SetLanguage(language.MustParse("ko-KR"))).To(Equal(language.Korean))
	})

	It("should fall back to Korean for unsupported languages", func() {
		translate.SetLanguage(language.English)
		Expect(translate.SetLanguage(language.French)).To(Equal(language.Korean))
		Expect(translate.Language()).To(Equal(language.Korean))
		Expect(translate.From("error: %v", "boom")).To(Equal("에러: boom"))
	})

	It("should translate the Korean prompt and length error", func() {
		Expect(translate.From("Hex input : ")).To(Equal("Hex 입 력 : "))
		Expect(translate.From("hex length must be 6 or 8 digits")).
			To(Equal("hex 길이는 6 또는 8 자리여야 합니다"))
	})

	It("should pass unknown keys through", func() {
		Expect(translate.From("no such message %v", 1)).To(Equal("no such message 1"))
	})

	DescribeTable("Resolve",
		func(name string, want language.Tag) {
			tag, err := translate.Resolve(name)
			Expect(err).NotTo(HaveOccurred())
			Expect(tag).To(Equal(want))
		},
		Entry("empty selects Korean", "", language.Korean),
		Entry("ko", "ko", language.Korean),
		Entry("en", "en", language.English),
		Entry("en-US", "en-US", language.English),
		Entry("unsupported falls back to Korean", "fr", language.Korean),
		Entry("unsupported region-tagged falls back to Korean", "de-CH", language.Korean),
	)

	It("should reject malformed language names", func() {
		_, err := translate.Resolve("not a language!")
		Expect(err).To(HaveOccurred())
	})

	It("should resolve auto to a supported language", func() {
		tag, err := translate.Resolve("auto")
		Expect(err).NotTo(HaveOccurred())
		Expect(tag).To(Or(Equal(language.Korean), Equal(language.English)))
	})
})
