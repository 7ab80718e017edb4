package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/angeloszaimis/storeconfig/config"
	"github.com/angeloszaimis/storeconfig/internal/mockbackend"
)

var _ = Describe("storeconfig commands", func() {
	var (
		backendServer *httptest.Server
		backendURL    string
		tempDir       string
		origDir       string
		stderr        *bytes.Buffer
	)

	run := func(args ...string) (string, error) {
		cmd := newRootCommand()
		var stdout bytes.Buffer
		stderr = &bytes.Buffer{}
		cmd.SetOut(&stdout)
		cmd.SetErr(stderr)
		cmd.SetArgs(args)

		err := cmd.ExecuteContext(context.Background())
		return stdout.String(), err
	}

	BeforeEach(func() {
		backendServer = httptest.NewServer(mockbackend.New(nil).Mux())
		backendURL = backendServer.URL + "/"

		var err error
		origDir, err = os.Getwd()
		Expect(err).NotTo(HaveOccurred())
		tempDir = GinkgoT().TempDir()
		Expect(os.Chdir(tempDir)).To(Succeed())

		os.Unsetenv(config.EnvBackendURL)
		os.Unsetenv(config.EnvStoreViewCode)
		viper.Reset()
	})

	AfterEach(func() {
		backendServer.Close()
		Expect(os.Chdir(origDir)).To(Succeed())
		os.Unsetenv(config.EnvBackendURL)
		viper.Reset()
	})

	Describe("store-config", func() {
		It("should print the default store view's config as JSON", func() {
			out, err := run("store-config", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			var got map[string]any
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got).To(HaveKeyWithValue("code", "default"))
			Expect(got).To(HaveKeyWithValue("locale", "en_US"))
			Expect(got).To(HaveKeyWithValue("secure_base_media_url", backendServer.URL+"/media/"))
		})

		It("should send the requested store view code", func() {
			out, err := run("store-config", "--backend-url", backendURL, "--store-view-code", "fr")
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(ContainSubstring(`"locale": "fr_FR"`))
		})

		It("should read the backend URL from the environment", func() {
			Expect(os.Setenv(config.EnvBackendURL, backendURL)).To(Succeed())

			out, err := run("store-config")
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(ContainSubstring(`"locale": "en_US"`))
		})

		It("should print YAML when asked", func() {
			out, err := run("store-config", "--backend-url", backendURL, "-o", "yaml")
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(ContainSubstring("locale: en_US"))
			Expect(out).To(ContainSubstring("base_currency_code: USD"))
		})

		It("should surface GraphQL errors verbatim", func() {
			_, err := run("store-config", "--backend-url", backendURL, "--store-view-code", "nope")

			Expect(err).To(MatchError("Requested store is not found"))
		})
	})

	Describe("configuration errors", func() {
		It("should fail without a backend URL", func() {
			_, err := run("store-config")

			Expect(err).To(MatchError(ContainSubstring("failed to load configuration")))
		})

		It("should reject a relative backend URL", func() {
			_, err := run("store-config", "--backend-url", "shop.example.com")

			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown output format", func() {
			_, err := run("store-config", "--backend-url", backendURL, "-o", "xml")

			Expect(err).To(MatchError(ContainSubstring("invalid --output")))
		})
	})

	Describe("media-url", func() {
		It("should print the secure media URL", func() {
			out, err := run("media-url", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(Equal(`"` + backendServer.URL + `/media/"` + "\n"))
		})
	})

	Describe("stores", func() {
		It("should list every store view", func() {
			out, err := run("stores", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			var got []map[string]any
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got).To(HaveLen(2))
		})
	})

	Describe("schema commands", func() {
		It("should print every schema type", func() {
			out, err := run("schema-types", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			var got struct {
				Schema struct {
					Types []map[string]any `json:"types"`
				} `json:"__schema"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.Schema.Types).To(HaveLen(10))
		})

		It("should keep only unions and interfaces", func() {
			out, err := run("union-types", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			var got struct {
				Schema struct {
					Types []map[string]any `json:"types"`
				} `json:"__schema"`
			}
			Expect(json.Unmarshal([]byte(out), &got)).To(Succeed())
			Expect(got.Schema.Types).To(HaveLen(2))
		})

		It("should print the possible types map", func() {
			out, err := run("possible-types", "--backend-url", backendURL)
			Expect(err).NotTo(HaveOccurred())

			Expect(out).To(MatchJSON(`{
				"ProductInterface": ["SimpleProduct", "ConfigurableProduct", "BundleProduct"],
				"CmsBlockOrPage": ["CmsBlock", "CmsPage"]
			}`))
		})
	})

	Describe("dump", func() {
		It("should write one file per query", func() {
			dir := filepath.Join(tempDir, "out")

			out, err := run("dump", "--backend-url", backendURL, "--dir", dir)
			Expect(err).NotTo(HaveOccurred())

			for _, name := range dumpFiles {
				path := filepath.Join(dir, name+".json")
				Expect(out).To(ContainSubstring(path))
				Expect(path).To(BeAnExistingFile())
			}

			raw, err := os.ReadFile(filepath.Join(dir, "possible-types.json"))
			Expect(err).NotTo(HaveOccurred())
			Expect(string(raw)).To(ContainSubstring("CmsBlockOrPage"))
		})

		It("should write YAML files when asked", func() {
			dir := filepath.Join(tempDir, "yaml")

			_, err := run("dump", "--backend-url", backendURL, "--dir", dir, "-o", "yaml")
			Expect(err).NotTo(HaveOccurred())

			Expect(filepath.Join(dir, "store-config.yaml")).To(BeAnExistingFile())
		})

		It("should write nothing when a query fails", func() {
			dir := filepath.Join(tempDir, "failed")

			_, err := run("dump", "--backend-url", backendURL, "--dir", dir, "--store-view-code", "nope")
			Expect(err).To(MatchError(ContainSubstring("dump failed")))

			Expect(dir).NotTo(BeADirectory())
		})

		It("should leave no files behind when one cannot be written", func() {
			dir := filepath.Join(tempDir, "blocked")
			Expect(os.MkdirAll(filepath.Join(dir, "schema-types.json.tmp"), 0o755)).To(Succeed())

			_, err := run("dump", "--backend-url", backendURL, "--dir", dir)
			Expect(err).To(MatchError(ContainSubstring("dump failed")))

			entries, err := os.ReadDir(dir)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Name()).To(Equal("schema-types.json.tmp"))
		})
	})
})
