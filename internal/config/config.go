package config

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/patrickprogramme/recetario/internal/assets"
	"github.com/patrickprogramme/recetario/internal/fsutil"
	"gopkg.in/yaml.v3"
)

const CurrentConfigVersion = 1

// Sous-dossiers et fichier fixes sous OutputDir
const (
	DataSubdir      = "datos"
	CollectionFile  = "recetas.json"
	ThumbnailSubdir = "miniaturas"
)

// DocumentConfig regroupe les textes imprimés dans le livre.
type DocumentConfig struct {
	CoverTitle     string `yaml:"cover_title"`
	CoverSubtitle  string `yaml:"cover_subtitle"` // %s => nom de la chaîne
	CountLabel     string `yaml:"count_label"`
	DateLabel      string `yaml:"date_label"`
	DateFormat     string `yaml:"date_format"` // layout Go
	IndexTitle     string `yaml:"index_title"`
	Placeholder    string `yaml:"image_placeholder"`
	LinkLabel      string `yaml:"link_label"`
	DetailsHeader  string `yaml:"details_header"`
	DurationLabel  string `yaml:"duration_label"`
	PublishedLabel string `yaml:"published_label"`
	Author         string `yaml:"author"`
}

// struct pour les paramètres de configuration
type Config struct {
	// Source
	ChannelURL  string `yaml:"channel_url"`
	ChannelName string `yaml:"channel_name"`

	// Chemins
	OutputDir   string `yaml:"output_dir"`
	DocumentDir string `yaml:"document_dir"`

	// Livre
	DocumentBaseName string         `yaml:"document_base_name"`
	Document         DocumentConfig `yaml:"document"`

	// Réseau
	ThumbnailTimeout time.Duration `yaml:"thumbnail_timeout"`
	RequestInterval  time.Duration `yaml:"request_interval"`

	// Fin d'exécution
	CopyPDFPath bool `yaml:"copy_pdf_path"`
	WaitForExit bool `yaml:"wait_for_exit"`

	LogLevel string `yaml:"log_level"`

	// yt-dlp
	YtDlp struct {
		Name            string        `yaml:"name"`
		Path            string        `yaml:"path"`
		ShowWarnings    bool          `yaml:"show_warnings"`
		AutoUpdateCheck bool          `yaml:"auto_update_check"`
		ExtractTimeout  time.Duration `yaml:"extract_timeout"`
		ListTimeout     time.Duration `yaml:"list_timeout"`

		// ResolvedPath contient le chemin effectif vers l'exécutable
		ResolvedPath string `yaml:"-"`
	} `yaml:"yt_dlp"`

	ConfigVersion int `yaml:"config_version"`

	configFilePath string
}

func defaultDocument() DocumentConfig {
	return DocumentConfig{
		CoverTitle:     "Libro de Recetas",
		CoverSubtitle:  "Recetas del canal de YouTube %s",
		CountLabel:     "Número de recetas:",
		DateLabel:      "Fecha de generación:",
		DateFormat:     "02/01/2006",
		IndexTitle:     "Índice de Recetas",
		Placeholder:    "[Imagen no disponible]",
		LinkLabel:      "Ver el video:",
		DetailsHeader:  "Detalles / ingredientes:",
		DurationLabel:  "Duración:",
		PublishedLabel: "Publicado:",
		Author:         "Recetario",
	}
}

// Configuration par défaut (fallback si l'asset embarqué est manquant)
func defaultConfig() *Config {
	c := &Config{}

	// Source
	c.ChannelURL = "https://youtube.com/@bebepiskota2913"
	c.ChannelName = "" // dérivé de l'URL si vide

	// Chemins
	c.OutputDir = "recetas_output"
	c.DocumentDir = "."

	// Livre
	c.DocumentBaseName = "Libro_Recetas"
	c.Document = defaultDocument()

	// Réseau
	c.ThumbnailTimeout = 10 * time.Second
	c.RequestInterval = 0

	c.CopyPDFPath = true
	c.WaitForExit = false
	c.LogLevel = "info"

	// yt-dlp
	c.YtDlp.Name = "yt-dlp"
	c.YtDlp.Path = ""
	c.YtDlp.ShowWarnings = false
	c.YtDlp.AutoUpdateCheck = false
	c.YtDlp.ExtractTimeout = 2 * time.Minute
	c.YtDlp.ListTimeout = 10 * time.Minute

	c.ConfigVersion = CurrentConfigVersion

	return c
}

// Default retourne la configuration par défaut normalisée (sans fichier).
func Default() *Config {
	c := defaultConfig()
	c.normalizeConfig()
	return c
}

// Load lit la config; si le fichier n'existe pas, on copie l'exemple embarqué depuis internal/assets
func Load(path string) (*Config, error) {
	if path == "" {
		path = "recetario.yaml"
	}

	// si le fichier n'existe pas -> essayer de créer à partir de l'asset embarqué
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := createDefaultConfigFromEmbedded(path); err != nil {
			return nil, fmt.Errorf("échec de création du fichier de configuration par défaut : %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lecture du fichier de configuration %s impossible : %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("analyse du fichier de configuration %s impossible : %w", path, err)
	}
	cfg.configFilePath = path

	// gestion de version : si le fichier est plus ancien -> orchestrer la mise à jour
	if cfg.ConfigVersion < CurrentConfigVersion {
		if err := orchestrateConfigUpgrade(cfg, cfg.ConfigVersion); err != nil {
			return nil, fmt.Errorf("échec de mise à niveau de la configuration : %w", err)
		}
		cfg.normalizeConfig()
	}

	return cfg, nil
}

// Parse déserialise un YAML par-dessus les valeurs par défaut :
// les champs absents conservent les valeurs par défaut.
func Parse(data []byte) (*Config, error) {
	cfg := defaultConfig()
	// un fichier sans config_version est considéré comme version 0
	cfg.ConfigVersion = 0

	// corriger les chemins Windows avec des backslashes
	data = bytes.ReplaceAll(data, []byte(`\`), []byte(`/`))

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	cfg.normalizeConfig()
	return cfg, nil
}

func createDefaultConfigFromEmbedded(dstPath string) error {
	b, err := assets.Embedded.ReadFile(assets.DefaultConfigAsset)
	if err != nil {
		return fmt.Errorf("lecture du modèle de configuration embarqué impossible : %w", err)
	}

	// écrire atomiquement sur disque (évite les fichiers partiels)
	if err := fsutil.WriteFileAtomic(dstPath, b, 0o644); err != nil {
		return fmt.Errorf("échec d'écriture du fichier de configuration %s : %w", dstPath, err)
	}

	fmt.Printf("info : fichier de configuration par défaut créé : %s\n", dstPath)
	return nil
}

func (c *Config) normalizeConfig() {
	c.ChannelURL = strings.TrimSpace(c.ChannelURL)
	c.ChannelName = strings.TrimSpace(c.ChannelName)
	if c.ChannelName == "" {
		c.ChannelName = channelNameFromURL(c.ChannelURL)
	}

	// Nettoyage des chemins
	if strings.TrimSpace(c.OutputDir) == "" {
		c.OutputDir = "recetas_output"
	}
	c.OutputDir = filepath.Clean(c.OutputDir)
	if strings.TrimSpace(c.DocumentDir) == "" {
		c.DocumentDir = "."
	}
	c.DocumentDir = filepath.Clean(c.DocumentDir)

	c.DocumentBaseName = fsutil.SanitizeFilename(c.DocumentBaseName, "Libro_Recetas")
	c.Document.fillDefaults()

	if c.ThumbnailTimeout <= 0 {
		c.ThumbnailTimeout = 10 * time.Second
	}
	if c.RequestInterval < 0 {
		c.RequestInterval = 0
	}
	c.LogLevel = strings.TrimSpace(strings.ToLower(c.LogLevel))

	if c.YtDlp.ExtractTimeout <= 0 {
		c.YtDlp.ExtractTimeout = 2 * time.Minute
	}
	if c.YtDlp.ListTimeout <= 0 {
		c.YtDlp.ListTimeout = 10 * time.Minute
	}

	// centraliser la résolution/normalisation de yt-dlp
	c.ResolveYtDlpPath()
}

// fillDefaults complète les textes laissés vides dans le YAML.
func (d *DocumentConfig) fillDefaults() {
	def := defaultDocument()
	fill := func(dst *string, v string) {
		if strings.TrimSpace(*dst) == "" {
			*dst = v
		}
	}
	fill(&d.CoverTitle, def.CoverTitle)
	fill(&d.CoverSubtitle, def.CoverSubtitle)
	fill(&d.CountLabel, def.CountLabel)
	fill(&d.DateLabel, def.DateLabel)
	fill(&d.DateFormat, def.DateFormat)
	fill(&d.IndexTitle, def.IndexTitle)
	fill(&d.Placeholder, def.Placeholder)
	fill(&d.LinkLabel, def.LinkLabel)
	fill(&d.DetailsHeader, def.DetailsHeader)
	fill(&d.DurationLabel, def.DurationLabel)
	fill(&d.PublishedLabel, def.PublishedLabel)
	fill(&d.Author, def.Author)
}

// channelNameFromURL : "https://youtube.com/@chaine/videos" -> "@chaine"
func channelNameFromURL(u string) string {
	for _, part := range strings.Split(u, "/") {
		if strings.HasPrefix(part, "@") {
			return part
		}
	}
	return u
}

// CollectionPath retourne <output_dir>/datos/recetas.json
func (c *Config) CollectionPath() string {
	return filepath.Join(c.OutputDir, DataSubdir, CollectionFile)
}

// ThumbnailDir retourne <output_dir>/miniaturas
func (c *Config) ThumbnailDir() string {
	return filepath.Join(c.OutputDir, ThumbnailSubdir)
}

// FilePath retourne le chemin du fichier chargé (vide si Parse direct).
func (c *Config) FilePath() string {
	return c.configFilePath
}

// ResolveYtDlpPath normalise le nom et résout le chemin complet vers l'exécutable.
// Appeler après avoir modifié cfg.YtDlp.Name ou cfg.YtDlp.Path.
func (c *Config) ResolveYtDlpPath() {
	if c == nil {
		return
	}

	// Normaliser le nom et ajouter .exe sur Windows si nécessaire
	c.YtDlp.Name = strings.TrimSpace(c.YtDlp.Name)
	if c.YtDlp.Name == "" {
		c.YtDlp.Name = "yt-dlp"
	}
	if runtime.GOOS == "windows" && !strings.HasSuffix(strings.ToLower(c.YtDlp.Name), ".exe") {
		c.YtDlp.Name = c.YtDlp.Name + ".exe"
	}

	// si cfg.Path est vide -> recherche dans PATH, sinon "./<exe>"
	exeName := c.YtDlp.Name
	cfgPath := strings.TrimSpace(c.YtDlp.Path)
	if cfgPath == "" {
		if found, err := exec.LookPath(exeName); err == nil {
			c.YtDlp.ResolvedPath = found
			return
		}
		c.YtDlp.ResolvedPath = "./" + exeName
		return
	}
	cleanPath := filepath.Clean(cfgPath)

	// si le chemin fourni finit déjà par l'exécutable -> on l'utilise
	if filepath.Base(cleanPath) == exeName {
		c.YtDlp.ResolvedPath = cleanPath
	} else {
		// sinon on considère cfgPath comme un répertoire et on y joint l'exe
		c.YtDlp.ResolvedPath = filepath.Join(cleanPath, exeName)
	}
}
