package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sicxe/config"
)

var _ = Describe("DecodeConfig", func() {
	Describe("Default Values", func() {
		It("should start PC at 0x3000 and base at 0", func() {
			cfg := config.DefaultDecodeConfig()
			Expect(cfg.ProgramCounter).To(Equal(uint32(0x3000)))
			Expect(cfg.BaseRegister).To(Equal(uint32(0)))
			Expect(cfg.ShowHex).To(BeFalse())
			Expect(cfg.Language).To(Equal("ko"))
		})

		It("should validate", func() {
			Expect(config.DefaultDecodeConfig().Validate()).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("should reject a program counter beyond 20 bits", func() {
			cfg := config.DefaultDecodeConfig()
			cfg.ProgramCounter = 0x100000
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("program_counter")))
		})

		It("should reject a base register beyond 20 bits", func() {
			cfg := config.DefaultDecodeConfig()
			cfg.BaseRegister = 0x100000
			Expect(cfg.Validate()).To(MatchError(ContainSubstring("base_register")))
		})

		It("should accept the top of the address space", func() {
			cfg := config.DefaultDecodeConfig()
			cfg.ProgramCounter = 0xFFFFF
			cfg.BaseRegister = 0xFFFFF
			Expect(cfg.Validate()).To(Succeed())
		})
	})

	DescribeTable("ParseAddress",
		func(s string, want uint32) {
			v, err := config.ParseAddress(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		},
		Entry("hex", "0x3000", uint32(0x3000)),
		Entry("upper-case prefix", "0X1F", uint32(0x1F)),
		Entry("decimal", "4096", uint32(4096)),
		Entry("zero", "0", uint32(0)),
		Entry("top of memory", "0xFFFFF", uint32(0xFFFFF)),
	)

	DescribeTable("ParseAddress errors",
		func(s string) {
			_, err := config.ParseAddress(s)
			Expect(err).To(HaveOccurred())
		},
		Entry("empty", ""),
		Entry("not a number", "zz"),
		Entry("negative", "-1"),
		Entry("beyond 20 bits", "0x100000"),
	)

	Describe("File Operations", func() {
		var tempDir string

		BeforeEach(func() {
			var err error
			tempDir, err = os.MkdirTemp("", "decode-config-test")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_ = os.RemoveAll(tempDir)
		})

		It("should save and load config", func() {
			original := config.DefaultDecodeConfig()
			original.ProgramCounter = 0x1000
			original.BaseRegister = 0x2000
			original.ShowHex = true
			original.Language = "en"

			path := filepath.Join(tempDir, "decode.json")
			Expect(original.SaveConfig(path)).To(Succeed())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(original))
		})

		It("should keep defaults for missing fields", func() {
			path := filepath.Join(tempDir, "partial.json")
			err := os.WriteFile(path, []byte(`{"base_register": 8192}`), 0644)
			Expect(err).NotTo(HaveOccurred())

			loaded, err := config.LoadConfig(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.ProgramCounter).To(Equal(uint32(0x3000)))
			Expect(loaded.BaseRegister).To(Equal(uint32(0x2000)))
			Expect(loaded.Language).To(Equal("ko"))
		})

		It("should return error for non-existent file", func() {
			_, err := config.LoadConfig("/nonexistent/path/decode.json")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid JSON", func() {
			path := filepath.Join(tempDir, "invalid.json")
			err := os.WriteFile(path, []byte("not valid json"), 0644)
			Expect(err).NotTo(HaveOccurred())

			_, err = config.LoadConfig(path)
			Expect(err).To(HaveOccurred())
		})
	})
})
