package category

// FallbackLabel is the sink for files whose extension matches no category.
const FallbackLabel = "❓ Misc"

// Default returns the built-in category table. Several extensions appear in
// more than one category on purpose (pak, ogg, svg, ...); those files are
// ambiguous and go through the resolver.
func Default() *Table {
	t, err := NewTable(defaultCategories, FallbackLabel)
	if err != nil {
		// The built-in table is validated by tests; a bad entry is a bug.
		panic(err)
	}
	return t
}

var defaultCategories = []Category{
	{Label: "📁 Archives", Extensions: []string{
		"zip", "rar", "7z", "tar", "gz", "xz", "bz2", "lz", "lzma", "cab", "zst", "ace", "arj",
		"lha", "lzh", "z", "tgz", "tbz2", "txz", "tlz", "taz", "tz", "deb", "rpm", "xar", "dmg",
		"sit", "sitx", "sea", "hqx", "cpt", "pit", "now", "bh", "lbr", "mar", "pak", "partimg",
	}},
	{Label: "🎮 Games", Extensions: []string{
		"iso", "bin", "cue", "pak", "obb", "rom", "sav", "nds", "rpf", "vpk", "wad", "xci", "nsp",
		"uasset", "bsa", "esp", "esm", "gba", "3ds", "cia", "gcm", "gcz", "wbfs", "rvz",
		"cso", "pbp", "psv", "vdf", "dat", "p3t", "pkg", "rap", "rif", "sfo", "self", "elf",
		"prx", "at3", "at9", "oma", "aa3", "psarc", "big", "forge", "unity3d", "assets",
		"bundle", "resource", "bank", "sb", "usm", "cpk", "arc", "res", "lvl",
	}},
	{Label: "🌐 Torrents", Extensions: []string{
		"torrent", "aria2", "utmetadata", "btsearch", "btskin", "magnet", "bt", "bc!", "ut",
		"!bt", "incomplete", "temp", "crdownload", "partial", "opdownload", "download",
	}},
	{Label: "🖼️ Images", Extensions: []string{
		"jpg", "jpeg", "png", "webp", "gif", "bmp", "tiff", "tif", "svg", "ico", "heic", "heif",
		"raw", "nef", "cr2", "cr3", "crw", "psd", "psb", "xcf", "ai", "eps", "dng", "orf", "rw2",
		"arw", "sr2", "srf", "raf", "3fr", "ari", "bay", "cap", "iiq", "eip", "dcs", "dcr",
		"drf", "k25", "kdc", "erf", "fff", "mef", "mos", "mrw", "ptx", "pxn", "r3d", "rwl",
		"rwz", "x3f", "avif", "jxl", "pcx", "tga", "ppm", "pgm", "pbm", "pnm", "xbm", "xpm",
		"cut", "emf", "wmf", "cgm", "pic", "pict", "mac", "qti", "qtif", "sgi", "ras", "sun",
		"pdd", "skp", "dds", "hdr", "exr", "pfm", "fli", "flc", "ani", "cur",
	}},
	{Label: "🎬 Videos", Extensions: []string{
		"webm", "mkv", "flv", "vob", "ogv", "ogg", "gifv", "mng", "mov", "avi", "qt", "wmv",
		"yuv", "rm", "rmvb", "asf", "amv", "mp4", "m4p", "m4v", "mpg", "mp2", "mpeg", "mpe",
		"mpv", "svi", "3gp", "3g2", "mxf", "roq", "nsv", "f4v", "f4p", "f4a", "f4b", "mod",
		"mts", "m2ts", "ts", "divx", "xvid", "dv", "m1v", "m2v", "m4u", "mj2", "mjpg", "mjpeg",
		"nuv", "rv", "m3u8", "webvtt", "vtt", "srt", "sub", "idx", "ssa", "ass", "usf", "ssf",
		"rt", "sbv", "ttml", "dfxp", "scc", "stl", "cap", "scr", "smi", "sami",
	}},
	{Label: "🎵 Audio", Extensions: []string{
		"mp3", "wav", "flac", "aac", "ogg", "oga", "wma", "m4a", "opus", "alac", "aiff", "aif",
		"aifc", "mid", "midi", "kar", "amr", "awb", "au", "snd", "ra", "ram", "ac3", "dts",
		"ape", "wv", "tta", "tak", "spx", "mka", "dff", "dsf", "caf", "rf64", "w64", "bwf",
		"cda", "gym", "it", "s3m", "xm", "mod", "669", "amf", "ams", "dbm", "dmf", "dsm",
		"far", "mdl", "med", "mtm", "okt", "ptm", "stm", "ult", "uni", "mt2", "psm", "umx",
		"plm", "mo3", "xmz", "itz", "s3z", "miz", "sid", "nsf", "spc", "vgm", "psf", "minipsf",
	}},
	{Label: "📄 Documents", Extensions: []string{
		"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "rtf", "md", "csv", "odt",
		"ods", "odp", "pages", "numbers", "key", "tex", "epub", "mobi", "azw", "azw3", "azw4",
		"lit", "pdb", "fb2", "tcr", "prc", "lrf", "oxps", "xps", "djvu", "djv", "cbr", "cbz",
		"cb7", "cbt", "cba", "chm", "hlp", "wri", "wpd", "abw", "zabw", "aw", "sxw", "stw",
		"sxc", "stc", "sxi", "sti", "sxd", "std", "sxg", "sxm", "mml", "mathml", "fodp",
		"fods", "fodt", "fodg", "uot", "uos", "uop", "docm", "dotx", "dotm", "xlsm", "xltx",
		"xltm", "xlsb", "xlam", "pptm", "potx", "potm", "ppam", "ppsx", "ppsm", "sldx", "sldm",
	}},
	{Label: "💻 Code", Extensions: []string{
		"py", "js", "ts", "java", "cpp", "c", "cs", "go", "rs", "rb", "php", "html", "css",
		"json", "xml", "sh", "bat", "pl", "lua", "ipynb", "sql", "yml", "yaml", "toml", "kt",
		"swift", "dart", "r", "m", "h", "hpp", "jsx", "tsx", "vue", "scss", "sass", "less",
		"coffee", "elm", "ex", "exs", "erl", "hrl", "hs", "lhs", "clj", "cljs", "cljc", "edn",
		"scala", "sc", "groovy", "gvy", "gy", "gsh", "nim", "nims", "crystal", "cr", "d", "di",
		"pas", "pp", "inc", "dpr", "dfm", "fmx", "vb", "vbs", "vba", "bas", "cls", "frm", "ctl",
		"pag", "rep", "f", "f90", "f95", "f03", "f08", "for", "ftn", "fpp", "ada", "adb", "ads",
		"tcl", "tk", "itcl", "itk", "exp", "awk", "sed", "cmake", "make", "dockerfile", "gradle",
		"ant", "pom", "sbt", "cabal", "stack", "mix", "rebar", "cargo", "gemfile", "rakefile",
		"podfile", "fastfile", "appfile", "matchfile", "snapfile", "gymfile", "deliverfile",
	}},
	{Label: "⚙️ Executables", Extensions: []string{
		"exe", "msi", "bat", "cmd", "jar", "apk", "appx", "ps1", "deb", "rpm", "run", "dmg",
		"pkg", "dll", "sys", "com", "scr", "app", "ipa", "xap", "air", "bin", "bundle", "o",
		"so", "dylib", "a", "lib", "out", "elf", "mach-o", "pe", "coff", "aout", "flatpak",
		"snap", "appimage", "portable", "paf", "u3p", "vbs", "wsf", "hta", "reg", "inf",
		"cab", "msp", "mst", "msm", "gadget", "cpl", "ax", "ocx", "tsp", "drv", "efi",
	}},
	{Label: "🎨 Design", Extensions: []string{
		"psd", "psb", "ai", "sketch", "fig", "xd", "blend", "ase", "afdesign", "afphoto", "afpub",
		"indd", "idml", "prproj", "aep", "ppj", "drw", "dwg", "dxf", "step", "stp", "iges", "igs",
		"3dm", "3ds", "max", "ma", "mb", "obj", "fbx", "dae", "ply", "stl", "x3d", "wrl", "vrml",
		"gltf", "glb", "usd", "usda", "usdc", "usdz", "c4d", "lwo", "lws", "modo", "mud", "ztl",
		"zbp", "zpr", "zsc", "rvt", "rfa", "rte", "rft", "skp", "kmz", "3mf", "amf", "cdr",
		"cmx", "vsd", "vsdx", "svg", "eps", "wmf", "emf", "cgm", "odg", "otg", "fodg",
	}},
	{Label: "🔧 Configs", Extensions: []string{
		"ini", "cfg", "conf", "config", "env", "properties", "settings", "plist", "reg", "toml",
		"yaml", "yml", "json", "xml", "prefs", "preferences", "rc", "profile", "bashrc", "zshrc",
		"vimrc", "editorconfig", "gitconfig", "npmrc", "bowerrc", "eslintrc", "prettierrc",
		"stylelintrc", "tslint", "jsconfig", "tsconfig", "webpack", "rollup", "gulpfile",
		"gruntfile", "browserslist", "babel", "postcss", "tailwind", "next", "nuxt", "vue",
		"angular", "ember", "svelte", "astro", "vite", "parcel", "snowpack",
	}},
	{Label: "📝 Logs", Extensions: []string{
		"log", "out", "err", "trace", "debug", "info", "warn", "error", "fatal", "access",
		"audit", "event", "syslog", "dmesg", "messages", "secure", "auth", "kern", "mail",
		"cron", "daemon", "user", "lpr", "news", "uucp", "local0", "local1", "local2", "local3",
		"local4", "local5", "local6", "local7", "wtmp", "utmp", "lastlog", "faillog", "btmp",
	}},
	{Label: "🗂️ Data", Extensions: []string{
		"db", "sqlite", "sqlite3", "db3", "s3db", "sl3", "mdb", "accdb", "dbf", "backup", "bak",
		"sql", "dump", "bson", "avro", "parquet", "orc", "hdf5", "h5", "he5", "nc", "cdf",
		"fits", "fts", "mat", "rdata", "rds", "sas7bdat", "xpt", "dta", "sav", "por", "zsav",
		"pickle", "pkl", "joblib", "npy", "npz", "arrow", "feather", "msgpack", "protobuf",
		"pb", "tfrecord", "leveldb", "rocksdb", "berkeleydb", "gdbm", "ndbm", "dbm",
	}},
	{Label: "🔤 Fonts", Extensions: []string{
		"ttf", "otf", "woff", "woff2", "eot", "pfb", "pfm", "afm", "fon", "fnt", "bdf", "pcf",
		"snf", "pfa", "gsf", "ttc", "otc", "dfont", "suit", "lwfn", "ffil", "cb", "vfb", "sfd",
		"ufo", "glyphs", "glyphspackage", "designspace", "fea", "kern", "mark", "mkmk", "curs",
		"liga", "rlig", "dlig", "hlig", "calt", "rclt", "clig", "ccmp", "locl", "lnum", "onum",
	}},
	{Label: "🗑️ Temporary", Extensions: []string{
		"tmp", "temp", "cache", "crdownload", "part", "partial", "swp", "swo", "~", "bak", "old",
		"orig", "save", "autosave", "recovery", "backup", "undo", "redo", "lock", "lck", "pid",
		"thumbs", "ds_store", "spotlight-v100", "fseventsd", "temporaryitems", "trashes", "trash",
		"deleted", "recycle", "recycled", "recycler", "desktop.ini", "folder.jpg", "albumart",
	}},
	{Label: "🧪 Scientific", Extensions: []string{
		"mat", "fig", "m", "mlx", "slx", "mdl", "sldd", "slxp", "rdata", "rds", "rda", "sas7bdat",
		"xpt", "dta", "sav", "por", "zsav", "ods", "nb", "cdf", "hdf", "hdf4", "hdf5", "h5",
		"he5", "nc", "fits", "fts", "pdb", "mol", "mol2", "sdf", "xyz", "cif", "mmcif", "pqr",
		"gro", "trr", "xtc", "edr", "tpr", "mdp", "itp", "top", "prm", "psf", "dcd", "crd",
		"rst", "ncrst", "mdcrd", "mdvel", "mden", "mdinfo", "out", "log", "com", "gjf", "inp",
	}},
	{Label: "💰 Financial", Extensions: []string{
		"qif", "ofx", "qfx", "iif", "csv", "qbo", "qbw", "qbb", "qbm", "qbx", "qby", "qbz",
		"tax", "taxreturn", "xlsx", "xls", "pdf", "p7s", "p7m", "p7c", "p7b", "cer", "crt",
		"der", "pem", "pfx", "p12", "jks", "keystore", "truststore", "cacerts",
	}},
	{Label: "🏥 Medical", Extensions: []string{
		"dcm", "dicom", "nii", "nii.gz", "img", "hdr", "analyze", "minc", "mnc", "mgz", "mgh",
		"nrrd", "nhdr", "vtk", "vti", "vtp", "vtu", "vtr", "vts", "pvti", "pvtp", "pvtu",
		"pvtr", "pvts", "mhd", "mha", "gipl", "hl7", "cda", "ccda", "fhir", "json", "xml",
	}},
	{Label: "🌍 GIS", Extensions: []string{
		"shp", "shx", "dbf", "prj", "cpg", "qix", "fix", "kml", "kmz", "gpx", "tcx", "fit",
		"geojson", "topojson", "gml", "gdb", "mdb", "e00", "000", "adf", "tif", "tiff", "img",
		"ecw", "sid", "jp2", "mrsid", "dt0", "dt1", "dt2", "hgt", "bil", "hdr", "blw",
		"aux", "ovr", "rrd", "pyramid", "rsc", "tab", "map", "id", "dat", "ind", "wor", "style",
	}},
	{Label: "🎭 CAD", Extensions: []string{
		"dwg", "dxf", "dwf", "dwt", "dws", "dxb", "sat", "3dm", "igs", "iges", "step", "stp",
		"x_t", "x_b", "xmt_txt", "xmt_bin", "prt", "asm", "par", "psm", "pwd", "sldprt", "sldasm",
		"slddrw", "catpart", "catproduct", "catdrawing", "cgr", "session", "exp", "dlv", "model",
		"drw", "neu", "mf1", "pkg", "unv", "ipt", "iam", "idw", "ipn", "frm",
	}},
	{Label: "🔐 Encryption", Extensions: []string{
		"gpg", "pgp", "asc", "sig", "p7s", "p7m", "p7c", "p7b", "cer", "crt", "der", "pem",
		"pfx", "p12", "jks", "keystore", "truststore", "cacerts", "key", "pub", "sec", "skr",
		"pkr", "axx", "cpt", "sea", "hqx", "sit", "sitx", "encrypted", "enc", "cipher", "crypt",
		"protected", "secure", "locked", "vault", "safe", "kdb", "kdbx", "1password", "lastpass",
	}},
	{Label: "📱 Mobile", Extensions: []string{
		"apk", "aab", "ipa", "app", "appx", "appxbundle", "msix", "msixbundle", "xap", "air",
		"ane", "swc", "swf", "fla", "as", "mxml", "flex", "actionscript", "dex", "odex", "vdex",
		"art", "oat", "pro", "r8", "mapping", "proguard", "symbols", "dsym", "plist", "entitlements",
		"mobileprovision", "p8", "p12", "cer", "csr", "certSigningRequest", "developerprofile",
	}},
	{Label: "🌐 Web", Extensions: []string{
		"html", "htm", "xhtml", "xml", "xsl", "xslt", "dtd", "xsd", "css", "scss", "sass", "less",
		"styl", "js", "mjs", "jsx", "ts", "tsx", "coffee", "dart", "elm", "vue", "svelte", "astro",
		"php", "asp", "aspx", "jsp", "erb", "ejs", "hbs", "handlebars", "mustache", "twig",
		"blade", "liquid", "njk", "nunjucks", "pug", "jade", "haml", "slim", "eco", "dust", "soy",
		"wasm", "wat", "map", "manifest", "appcache", "webmanifest", "browserconfig", "humans",
		"robots", "sitemap", "rss", "atom", "feed", "opml", "vcard", "vcf", "ics", "ical",
	}},
	{Label: FallbackLabel},
}
