package i18n

import (
	"github.com/fnwatchdog/fnwatchdog/internal/domain"
	"golang.org/x/text/language"
)

// bundles holds the message templates per bundle, key and language.
// Templates use fmt verbs with explicit argument indexes.
var bundles = map[string]map[string]map[language.Tag]string{
	domain.BundleErrors: {
		domain.MsgMissingDefinitionSources: {
			language.English: `The value of "definition_sources" must not be null, please set it to a list of definition files`,
			language.German:  `Der Wert von "definition_sources" darf nicht null sein, bitte eine Liste von Definitionsdateien angeben`,
		},
		domain.MsgInvalidConfig: {
			language.English: `Invalid configuration file %[1]s`,
			language.German:  `Ungültige Konfigurationsdatei %[1]s`,
		},
		domain.MsgEngineCreation: {
			language.English: `Could not load the naming convention definitions`,
			language.German:  `Die Namenskonventionen konnten nicht geladen werden`,
		},
		domain.MsgEngineCheck: {
			language.English: `Checking source root "%[1]s" failed`,
			language.German:  `Die Prüfung des Quellverzeichnisses "%[1]s" ist fehlgeschlagen`,
		},
		domain.MsgRootInspection: {
			language.English: `Cannot inspect source root "%[1]s"`,
			language.German:  `Das Quellverzeichnis "%[1]s" kann nicht gelesen werden`,
		},
	},
	domain.BundleLog: {
		domain.MsgScanningRoot: {
			language.English: `Scanning source root "%[1]s"`,
			language.German:  `Durchsuche Quellverzeichnis "%[1]s"`,
		},
		domain.MsgFoundRoot: {
			language.English: `Found source root: %[1]s`,
			language.German:  `Quellverzeichnis gefunden: %[1]s`,
		},
		domain.MsgNoSourceRoots: {
			language.English: `No source roots defined, please define them with "scan_roots" or --root`,
			language.German:  `Keine Quellverzeichnisse definiert, bitte über "scan_roots" oder --root angeben`,
		},
		domain.MsgNoncompliantPackage: {
			language.English: `The package "%[1]s" violates the naming conventions`,
			language.German:  `Das Paket "%[1]s" verletzt die Namenskonventionen`,
		},
		domain.MsgNoncompliantFile: {
			language.English: `The file "%[1]s" in package "%[2]s" violates the naming conventions`,
			language.German:  `Die Datei "%[1]s" im Paket "%[2]s" verletzt die Namenskonventionen`,
		},
	},
}
