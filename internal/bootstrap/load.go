package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/patrickprogramme/recetario/internal/assets"
	"github.com/patrickprogramme/recetario/internal/config"
)

// ConfigFileName est le nom du fichier de configuration posé à côté de l'exécutable.
const ConfigFileName = "recetario.yaml"

// ConfigPathNextToBinary retourne <dossier de l'exécutable>/recetario.yaml,
// ou ./recetario.yaml si le chemin de l'exécutable est inconnu.
func ConfigPathNextToBinary() string {
	exePath, err := os.Executable()
	if err != nil {
		return ConfigFileName
	}
	return filepath.Join(filepath.Dir(exePath), ConfigFileName)
}

// LoadConfig crée le fichier depuis l'exemple embarqué s'il manque, le charge
// puis le valide.
func LoadConfig(path string) (*config.Config, error) {
	created, err := EnsureConfigPresent(path, assets.Embedded, assets.DefaultConfigAsset)
	if err != nil {
		return nil, fmt.Errorf("EnsureConfigPresent: %w", err)
	}
	if created {
		fmt.Printf("info : fichier de configuration créé : %s\n", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s : %w", path, err)
	}
	return cfg, nil
}
