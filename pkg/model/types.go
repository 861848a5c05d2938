package model

import "fmt"

// Seconds est un alias explicite pour représenter une durée en secondes.
type Seconds int64

// TimestampHHMMSS formate Seconds en "HH:MM:SS" (toujours 2 chiffres par composant).
// Exemple : 65 -> "00:01:05", 3661 -> "01:01:01".
func (s Seconds) TimestampHHMMSS() string {
	total := int64(s)
	if total < 0 {
		total = 0
	}
	h := total / 3600
	m := (total % 3600) / 60
	sec := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
}

// NodeKind distingue une vidéo isolée d'un groupe (onglet, playlist).
type NodeKind int

const (
	NodeVideo NodeKind = iota
	NodeGroup
)

func (k NodeKind) String() string {
	switch k {
	case NodeVideo:
		return "video"
	case NodeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Node est un élément de la liste renvoyée pour une chaîne.
// Une feuille (NodeVideo) porte un ID ; un groupe (NodeGroup) porte des enfants.
type Node struct {
	Kind     NodeKind
	ID       string
	Title    string
	Children []Node
}

// Video construit une feuille.
func Video(id, title string) Node {
	return Node{Kind: NodeVideo, ID: id, Title: title}
}

// Group construit un groupe nommé.
func Group(title string, children ...Node) Node {
	return Node{Kind: NodeGroup, Title: title, Children: children}
}

// VideoRef est le résultat de l'énumération : un identifiant et un titre si disponible.
type VideoRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

func (v VideoRef) String() string {
	return fmt.Sprintf("VideoRef(id=%s, title=%q)", v.ID, v.Title)
}
