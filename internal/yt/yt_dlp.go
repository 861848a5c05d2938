package yt

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/patrickprogramme/recetario/pkg/model"
)

var (
	ErrNotInstalled = errors.New("yt-dlp introuvable")
	ErrTimeout      = errors.New("yt-dlp: délai dépassé")
	ErrNoJSON       = errors.New("yt-dlp: aucun JSON dans la sortie")
)

// NewYtDlp construit une instance. Path doit être le chemin résolu vers l'exe
func NewYtDlp(name string, resolvedPath string, cfg YtDlpConfig) *YtDlp {
	return &YtDlp{
		Name:   name,
		Path:   resolvedPath,
		Config: cfg,
	}
}

// CheckBinary vérifie que le binaire spécifié existe et n'est pas un dossier.
// Si le chemin résolu est absent, on tente une recherche dans le PATH.
func (y *YtDlp) CheckBinary() error {
	if y == nil {
		return fmt.Errorf("yt-dlp non initialisé")
	}

	exe := y.exe()
	info, err := os.Stat(exe)
	if err != nil {
		found, lerr := exec.LookPath(y.Name)
		if lerr != nil {
			return fmt.Errorf("%w (%s) : %v", ErrNotInstalled, exe, err)
		}
		y.Path = found
		return nil
	}
	if info.IsDir() {
		return fmt.Errorf("le chemin spécifié pour yt-dlp est un répertoire, pas un fichier exécutable")
	}
	return nil
}

// ExtractRaw exécute yt-dlp sur url dans le mode donné et renvoie la sortie JSON brute.
// Le JSON est lu sur stdout, chaque ligne de stderr devient un avertissement.
func (y *YtDlp) ExtractRaw(ctx context.Context, url string, mode Mode) (*ExtractedRaw, error) {
	timeout, fallback := y.Config.ExtractTimeout, defaultExtractTimeout
	if mode == ModeFlat {
		timeout, fallback = y.Config.ListTimeout, defaultListTimeout
	}
	if timeout <= 0 {
		timeout = fallback
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, y.exe(), y.Config.BuildArgs(url, mode)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	if err := cmd.Run(); err != nil {
		if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w après %s : %s", ErrTimeout, timeout, url)
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("yt-dlp dump json failed: %w, output: %s", err, strings.TrimSpace(stderr.String()))
	}

	raw, err := splitOutput(stdout.Bytes(), stderr.Bytes())
	if err != nil {
		return nil, err
	}
	if len(raw.Warnings) > 0 {
		y.Log.Warn().Str("url", url).Msg(raw.WarningsText())
	}
	return raw, nil
}

// splitOutput isole la ligne JSON de stdout et collecte les avertissements.
func splitOutput(stdout, stderr []byte) (*ExtractedRaw, error) {
	var jsonLine string
	for _, line := range strings.Split(string(stdout), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "{") || strings.HasPrefix(line, "[") {
			jsonLine = line
		}
	}
	if jsonLine == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoJSON, strings.TrimSpace(string(stdout)))
	}

	var warnings []string
	for _, line := range strings.Split(string(stderr), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			warnings = append(warnings, line)
		}
	}
	return &ExtractedRaw{JSON: []byte(jsonLine), Warnings: warnings}, nil
}

// ChannelTree liste la chaîne en mode plat.
func (y *YtDlp) ChannelTree(ctx context.Context, channelURL string) (model.Node, error) {
	raw, err := y.ExtractRaw(ctx, channelURL, ModeFlat)
	if err != nil {
		return model.Node{}, err
	}
	return ParseChannel(raw.JSON)
}

// VideoMeta récupère les métadonnées complètes d'une vidéo à partir de son ID.
func (y *YtDlp) VideoMeta(ctx context.Context, id string) (*model.VideoMeta, error) {
	if id == "" {
		return nil, fmt.Errorf("yt-dlp: identifiant vide")
	}
	raw, err := y.ExtractRaw(ctx, model.WatchURL(id), ModeVideo)
	if err != nil {
		return nil, err
	}
	meta, err := ParseVideo(raw.JSON)
	if err != nil {
		return nil, err
	}
	if meta.ID == "" {
		meta.ID = id
	}
	return meta, nil
}
