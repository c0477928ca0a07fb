package anki

import (
	"archive/zip"
	"crypto/sha1"
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// NoteTypeName is the name of the note type created in every deck
const NoteTypeName = "Spanish Pronunciation (silabario)"

// fieldSeparator joins note fields in the notes table
const fieldSeparator = "\x1f"

// APKGGenerator creates Anki package files (.apkg)
type APKGGenerator struct {
	deckName string
	deckID   int64
	modelID  int64
	cards    []Card
	now      func() time.Time
}

// NewAPKGGenerator creates a new APKG generator
func NewAPKGGenerator(deckName string) *APKGGenerator {
	// IDs are millisecond timestamps so that decks from separate runs do not collide
	ms := time.Now().UnixMilli()
	return &APKGGenerator{
		deckName: deckName,
		deckID:   ms,
		modelID:  ms + 1,
		cards:    make([]Card, 0),
		now:      time.Now,
	}
}

// AddCard adds a card to the generator
func (g *APKGGenerator) AddCard(card Card) {
	g.cards = append(g.cards, card)
}

// GenerateAPKG writes the deck to outputPath
func (g *APKGGenerator) GenerateAPKG(outputPath string) error {
	tempDir, err := os.MkdirTemp("", "silabario_apkg_*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	dbPath := filepath.Join(tempDir, "collection.anki2")
	if err := g.createDatabase(dbPath); err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	if err := g.createZipPackage(dbPath, outputPath); err != nil {
		return fmt.Errorf("failed to create zip package: %w", err)
	}

	return nil
}

// createDatabase creates the Anki SQLite collection
func (g *APKGGenerator) createDatabase(dbPath string) error {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := createTables(db); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if err := g.insertCollection(db); err != nil {
		return fmt.Errorf("failed to insert collection: %w", err)
	}

	if err := g.insertNotesAndCards(db); err != nil {
		return fmt.Errorf("failed to insert notes and cards: %w", err)
	}

	return nil
}

// schema is the Anki 2.1 collection layout (schema version 11)
var schema = []string{
	`CREATE TABLE col (
		id integer PRIMARY KEY, crt integer NOT NULL, mod integer NOT NULL,
		scm integer NOT NULL, ver integer NOT NULL, dty integer NOT NULL,
		usn integer NOT NULL, ls integer NOT NULL, conf text NOT NULL,
		models text NOT NULL, decks text NOT NULL, dconf text NOT NULL,
		tags text NOT NULL
	)`,
	`CREATE TABLE notes (
		id integer PRIMARY KEY, guid text NOT NULL, mid integer NOT NULL,
		mod integer NOT NULL, usn integer NOT NULL, tags text NOT NULL,
		flds text NOT NULL, sfld text NOT NULL, csum integer NOT NULL,
		flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE cards (
		id integer PRIMARY KEY, nid integer NOT NULL, did integer NOT NULL,
		ord integer NOT NULL, mod integer NOT NULL, usn integer NOT NULL,
		type integer NOT NULL, queue integer NOT NULL, due integer NOT NULL,
		ivl integer NOT NULL, factor integer NOT NULL, reps integer NOT NULL,
		lapses integer NOT NULL, left integer NOT NULL, odue integer NOT NULL,
		odid integer NOT NULL, flags integer NOT NULL, data text NOT NULL
	)`,
	`CREATE TABLE revlog (
		id integer PRIMARY KEY, cid integer NOT NULL, usn integer NOT NULL,
		ease integer NOT NULL, ivl integer NOT NULL, lastIvl integer NOT NULL,
		factor integer NOT NULL, time integer NOT NULL, type integer NOT NULL
	)`,
	`CREATE TABLE graves (usn integer NOT NULL, oid integer NOT NULL, type integer NOT NULL)`,
	`CREATE INDEX ix_notes_csum ON notes (csum)`,
	`CREATE INDEX ix_notes_usn ON notes (usn)`,
	`CREATE INDEX ix_cards_usn ON cards (usn)`,
	`CREATE INDEX ix_cards_nid ON cards (nid)`,
	`CREATE INDEX ix_cards_sched ON cards (did, queue, due)`,
	`CREATE INDEX ix_revlog_usn ON revlog (usn)`,
	`CREATE INDEX ix_revlog_cid ON revlog (cid)`,
}

func createTables(db *sql.DB) error {
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute query: %w", err)
		}
	}
	return nil
}

type deck struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Mod              int64  `json:"mod"`
	Desc             string `json:"desc"`
	Collapsed        bool   `json:"collapsed"`
	Dyn              int    `json:"dyn"`
	Conf             int    `json:"conf"`
	USN              int    `json:"usn"`
	NewToday         [2]int `json:"newToday"`
	RevToday         [2]int `json:"revToday"`
	LrnToday         [2]int `json:"lrnToday"`
	TimeToday        [2]int `json:"timeToday"`
	BrowserCollapsed bool   `json:"browserCollapsed"`
	ExtendNew        int    `json:"extendNew"`
	ExtendRev        int    `json:"extendRev"`
}

type noteField struct {
	Name   string   `json:"name"`
	Ord    int      `json:"ord"`
	Sticky bool     `json:"sticky"`
	RTL    bool     `json:"rtl"`
	Font   string   `json:"font"`
	Size   int      `json:"size"`
	Media  []string `json:"media"`
}

type cardTemplate struct {
	Name  string `json:"name"`
	Ord   int    `json:"ord"`
	QFmt  string `json:"qfmt"`
	AFmt  string `json:"afmt"`
	Did   *int64 `json:"did"`
	BQFmt string `json:"bqfmt"`
	BAFmt string `json:"bafmt"`
}

type noteType struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Type      int            `json:"type"`
	Mod       int64          `json:"mod"`
	USN       int            `json:"usn"`
	SortF     int            `json:"sortf"`
	Did       int64          `json:"did"`
	Req       []any          `json:"req"`
	Vers      []int          `json:"vers"`
	Tags      []string       `json:"tags"`
	LatexPre  string         `json:"latexPre"`
	LatexPost string         `json:"latexPost"`
	Flds      []noteField    `json:"flds"`
	Tmpls     []cardTemplate `json:"tmpls"`
	CSS       string         `json:"css"`
}

// insertCollection writes the single col row holding decks, note type and options
func (g *APKGGenerator) insertCollection(db *sql.DB) error {
	now := g.now().Unix()

	newDeck := func(id int64, name, desc string) deck {
		return deck{ID: id, Name: name, Mod: now, Desc: desc, Conf: 1, ExtendNew: 10, ExtendRev: 50}
	}
	decks := map[string]deck{
		"1": newDeck(1, "Default", ""),
		fmt.Sprintf("%d", g.deckID): newDeck(g.deckID, g.deckName,
			"Spanish syllables and pronunciation created by silabario"),
	}

	models := map[string]noteType{
		fmt.Sprintf("%d", g.modelID): g.noteType(now),
	}

	conf := map[string]any{
		"nextPos":       1,
		"estTimes":      true,
		"activeDecks":   []int64{1},
		"sortType":      "noteFld",
		"sortBackwards": false,
		"addToCur":      true,
		"curDeck":       1,
		"newSpread":     0,
		"dueCounts":     true,
		"collapseTime":  1200,
		"timeLim":       0,
		"schedVer":      1,
		"curModel":      fmt.Sprintf("%d", g.modelID),
		"dayLearnFirst": false,
	}

	dconf := map[string]any{
		"1": map[string]any{
			"id":   1,
			"name": "Default",
			"dyn":  0,
			"new": map[string]any{
				"delays": []int{1, 10}, "ints": []int{1, 4, 7}, "initialFactor": 2500,
				"perDay": 20, "order": 1, "bury": true, "separate": true,
			},
			"lapse": map[string]any{
				"delays": []int{10}, "mult": 0, "minInt": 1, "leechFails": 8, "leechAction": 0,
			},
			"rev": map[string]any{
				"perDay": 100, "ease4": 1.3, "fuzz": 0.05, "maxIvl": 36500,
				"ivlFct": 1, "bury": true, "minSpace": 1,
			},
			"timer": 0, "maxTaken": 60, "usn": 0, "mod": now,
			"autoplay": true, "replayq": true,
		},
	}

	encoded := make([]string, 0, 4)
	for _, v := range []any{conf, models, decks, dconf} {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode collection config: %w", err)
		}
		encoded = append(encoded, string(data))
	}

	_, err := db.Exec(`INSERT INTO col VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		1,        // id
		now,      // crt
		now*1000, // mod
		now*1000, // scm
		11,       // ver
		0,        // dty
		0,        // usn
		0,        // ls
		encoded[0], encoded[1], encoded[2], encoded[3],
		"{}", // tags
	)
	return err
}

// noteType describes the fields and the two card templates
func (g *APKGGenerator) noteType(now int64) noteType {
	flds := make([]noteField, len(fieldNames))
	for i, name := range fieldNames {
		size := 20
		if name == "Notes" {
			size = 16
		}
		flds[i] = noteField{Name: name, Ord: i, Font: "Arial", Size: size, Media: []string{}}
	}

	return noteType{
		ID:    g.modelID,
		Name:  NoteTypeName,
		Mod:   now,
		USN:   -1,
		Did:   g.deckID,
		Req:   []any{[]any{0, "all", []int{0}}, []any{1, "all", []int{2}}},
		Vers:  []int{},
		Tags:  []string{},
		Flds:  flds,
		Tmpls: []cardTemplate{
			{Name: "Word → Pronunciation", Ord: 0, QFmt: wordFront, AFmt: wordBack},
			{Name: "IPA → Word", Ord: 1, QFmt: ipaFront, AFmt: ipaBack},
		},
		LatexPre: `\documentclass[12pt]{article}
\special{papersize=3in,5in}
\usepackage[utf8]{inputenc}
\usepackage{amssymb,amsmath}
\pagestyle{empty}
\setlength{\parindent}{0in}
\begin{document}`,
		LatexPost: `\end{document}`,
		CSS:       cardCSS,
	}
}

const wordFront = `<div class="front"><div class="word">{{Word}}</div></div>`

const wordBack = `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="syllables">{{Syllables}}</div>
<div class="ipa">/{{IPA}}/</div>
<div class="accentuation">{{Accentuation}}</div>
{{#Translation}}<div class="translation">{{Translation}}</div>{{/Translation}}
{{#Notes}}<div class="notes">{{Notes}}</div>{{/Notes}}
</div>`

const ipaFront = `<div class="front"><div class="ipa">/{{IPA}}/</div></div>`

const ipaBack = `{{FrontSide}}

<hr id="answer">

<div class="back">
<div class="word">{{Word}}</div>
<div class="syllables">{{Syllables}}</div>
{{#Translation}}<div class="translation">{{Translation}}</div>{{/Translation}}
</div>`

const cardCSS = `.card {
  font-family: Arial, sans-serif;
  font-size: 20px;
  text-align: center;
  color: #333;
  background-color: white;
}

.front, .back { padding: 20px; }

.word { font-size: 32px; font-weight: bold; color: #c0392b; margin: 20px 0; }

.syllables { font-size: 26px; letter-spacing: 2px; margin: 10px 0; }

.ipa { font-family: "Doulos SIL", "Charis SIL", serif; font-size: 28px; color: #2c3e50; margin: 10px 0; }

.accentuation { font-size: 16px; color: #16a085; text-transform: uppercase; }

.translation { font-size: 22px; margin-top: 15px; }

.notes { font-size: 16px; color: #7f8c8d; margin-top: 20px; font-style: italic; }

hr#answer { margin: 30px 0; border: 0; border-top: 1px solid #ecf0f1; }`

// insertNotesAndCards writes one note and two cards per Card
func (g *APKGGenerator) insertNotesAndCards(db *sql.DB) error {
	now := g.now()

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	noteStmt, err := tx.Prepare(`INSERT INTO notes VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer noteStmt.Close()

	cardStmt, err := tx.Prepare(`INSERT INTO cards VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer cardStmt.Close()

	for i, card := range g.cards {
		// Leave room for two card IDs after each note ID
		noteID := now.UnixMilli() + int64(i*3)

		guid := uuid.NewString()
		flds := strings.Join(card.fields(), fieldSeparator)

		_, err := noteStmt.Exec(
			noteID,                   // id
			guid,                     // guid
			g.modelID,                // mid
			now.Unix(),               // mod
			-1,                       // usn
			"silabario",              // tags
			flds,                     // flds
			card.Word,                // sfld
			fieldChecksum(card.Word), // csum
			0,                        // flags
			"",                       // data
		)
		if err != nil {
			return fmt.Errorf("failed to insert note %q: %w", card.Word, err)
		}

		for ord := 0; ord < 2; ord++ {
			cardID := noteID + int64(ord) + 1
			_, err := cardStmt.Exec(
				cardID,     // id
				noteID,     // nid
				g.deckID,   // did
				ord,        // ord
				now.Unix(), // mod
				-1,         // usn
				0,          // type (new)
				0,          // queue (new)
				i*2+ord+1,  // due (position among new cards)
				0, 0, 0, 0, 0, 0, 0, 0, // ivl factor reps lapses left odue odid flags
				"",                     // data
			)
			if err != nil {
				return fmt.Errorf("failed to insert card %d of %q: %w", ord, card.Word, err)
			}
		}
	}

	return tx.Commit()
}

// fieldChecksum is Anki's duplicate check: the first 8 hex digits of the
// SHA-1 of the sort field
func fieldChecksum(s string) int64 {
	sum := sha1.Sum([]byte(s))
	return int64(binary.BigEndian.Uint32(sum[:4]))
}

// createZipPackage zips the collection with an empty media map
func (g *APKGGenerator) createZipPackage(dbPath, outputPath string) error {
	if dir := filepath.Dir(outputPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	zipFile, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer zipFile.Close()

	archive := zip.NewWriter(zipFile)

	db, err := os.ReadFile(dbPath)
	if err != nil {
		return err
	}

	for _, entry := range []struct {
		name string
		data []byte
	}{
		{"collection.anki2", db},
		{"media", []byte("{}")},
	} {
		w, err := archive.Create(entry.name)
		if err != nil {
			return err
		}
		if _, err := w.Write(entry.data); err != nil {
			return err
		}
	}

	return archive.Close()
}
