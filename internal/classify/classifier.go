package classify

import (
	"sweeper/internal/platform"
	"sweeper/internal/scan"
)

// Classify maps one record to its Category and SafetyLevel. It is a pure
// function of its inputs: the same record, profile, and process snapshot
// always produce the same result.
//
// The rules form an ordered cascade — the first rule that fires wins and
// later rules are not reconsidered. The order is part of the contract and
// each rule is unit-tested on its own.
func Classify(rec scan.Record, prof platform.Profile, open OpenSet) (Category, SafetyLevel) {
	for _, r := range cascade {
		if cat, safety, ok := r.eval(rec, prof, open); ok {
			return cat, safety
		}
	}
	// The final cascade rule always fires; this is unreachable.
	return CategoryUnknown, SafetyUnknown
}

// All classifies every record against one profile and process snapshot.
func All(recs []scan.Record, prof platform.Profile, open OpenSet) []Classified {
	out := make([]Classified, 0, len(recs))
	for _, rec := range recs {
		cat, safety := Classify(rec, prof, open)
		out = append(out, Classified{
			Record:       rec,
			Category:     cat,
			Safety:       safety,
			CategoryName: cat.String(),
			SafetyName:   safety.String(),
		})
	}
	return out
}

// rule is one step of the classification cascade.
type rule struct {
	name string
	eval func(rec scan.Record, prof platform.Profile, open OpenSet) (Category, SafetyLevel, bool)
}

// cascade is evaluated top to bottom; first match wins.
var cascade = []rule{
	{name: "broken-link", eval: evalBrokenLink},
	{name: "protected-path", eval: evalProtectedPath},
	{name: "active-use", eval: evalActiveUse},
	{name: "extension-and-path", eval: evalExtensionAndPath},
}

// evalBrokenLink handles symlinks whose target no longer resolves.
func evalBrokenLink(rec scan.Record, _ platform.Profile, _ OpenSet) (Category, SafetyLevel, bool) {
	if !rec.Broken {
		return 0, 0, false
	}
	return CategoryUnknown, SafetyUnknown, true
}

// evalProtectedPath forces critical/system for anything under a protected
// prefix, regardless of extension. Matching is segment-aware prefix
// comparison — never substring containment.
func evalProtectedPath(rec scan.Record, prof platform.Profile, _ OpenSet) (Category, SafetyLevel, bool) {
	if !prof.IsProtected(rec.Path) {
		return 0, 0, false
	}
	return CategorySystem, SafetyCritical, true
}

// evalActiveUse forces critical for files currently held open by a
// system process. Only the locked file itself is protected — a directory
// merely containing a running executable is not.
func evalActiveUse(rec scan.Record, prof platform.Profile, open OpenSet) (Category, SafetyLevel, bool) {
	inUse := rec.InUse
	if !inUse && open != nil {
		inUse = open.IsOpen(rec.Path)
	}
	if !inUse {
		return 0, 0, false
	}
	return categoryFor(rec, prof), SafetyCritical, true
}

// evalExtensionAndPath assigns the category from the extension table and
// refines safety from path patterns. Always fires.
func evalExtensionAndPath(rec scan.Record, prof platform.Profile, _ OpenSet) (Category, SafetyLevel, bool) {
	cat := categoryFor(rec, prof)
	return cat, refineSafety(rec, prof), true
}

// extTable maps lower-cased extensions to categories. Installer/executable
// and crash-dump extensions are handled separately because their category
// depends on path or platform.
var extTable = map[string]Category{
	"dll": CategorySystem,
	"sys": CategorySystem,
	"ocx": CategorySystem,

	"mp4": CategoryMedia,
	"avi": CategoryMedia,
	"mkv": CategoryMedia,
	"mov": CategoryMedia,
	"wmv": CategoryMedia,
	"mp3": CategoryMedia,
	"wav": CategoryMedia,

	"pdf":  CategoryDocuments,
	"doc":  CategoryDocuments,
	"docx": CategoryDocuments,
	"xlsx": CategoryDocuments,
	"ppt":  CategoryDocuments,
	"txt":  CategoryDocuments,

	"jpg":  CategoryImages,
	"jpeg": CategoryImages,
	"png":  CategoryImages,
	"gif":  CategoryImages,
	"bmp":  CategoryImages,

	"zip": CategoryArchives,
	"rar": CategoryArchives,
	"7z":  CategoryArchives,
	"tar": CategoryArchives,
	"gz":  CategoryArchives,

	"tmp":   CategoryTemp,
	"temp":  CategoryTemp,
	"cache": CategoryTemp,
	"log":   CategoryTemp,

	"bak":    CategoryBackups,
	"old":    CategoryBackups,
	"backup": CategoryBackups,

	"vhd":  CategoryVirtualDisk,
	"vhdx": CategoryVirtualDisk,
	"vmdk": CategoryVirtualDisk,
	"vdi":  CategoryVirtualDisk,

	"bin":         CategoryModelWeights,
	"gguf":        CategoryModelWeights,
	"model":       CategoryModelWeights,
	"safetensors": CategoryModelWeights,
}

// installerExts are extensions that mean "installer" when the file sits
// in a Downloads root and "executable" anywhere else.
var installerExts = map[string]bool{
	"exe": true,
	"msi": true,
	"dmg": true,
}

// categoryFor assigns the category from extension and path signals.
// Files with no extension fall through to path patterns only.
func categoryFor(rec scan.Record, prof platform.Profile) Category {
	cat := CategoryUnknown

	switch {
	case rec.Ext == "":
		// No extension: path patterns below are the only signal.
	case prof.HasDumpExtension(rec.Ext):
		cat = CategoryCrashDump
	case installerExts[rec.Ext]:
		if prof.UnderDownloadRoot(rec.Path) {
			cat = CategoryInstallers
		} else {
			cat = CategoryExecutables
		}
	default:
		if c, ok := extTable[rec.Ext]; ok {
			cat = c
		}
	}

	// A file in a known cache location is cache regardless of a temp or
	// missing extension match; stronger signals above are not overridden.
	if (cat == CategoryUnknown || cat == CategoryTemp) && prof.HasCacheSegments(rec.Path) {
		return CategoryCache
	}
	return cat
}

// refineSafety applies the path-pattern rules for records not already
// forced critical: regenerable locations are safe, the user's content
// roots are user, everything else is unknown.
func refineSafety(rec scan.Record, prof platform.Profile) SafetyLevel {
	if prof.UnderTempDir(rec.Path) || prof.HasCacheSegments(rec.Path) {
		return SafetySafe
	}
	if prof.UnderUserRoot(rec.Path) {
		return SafetyUser
	}
	return SafetyUnknown
}
