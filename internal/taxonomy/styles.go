package taxonomy

// Style carries the presentation hints of a top-level category.
type Style struct {
	Icon  string
	Color string
}

// categoryStyles maps the known top-level category slugs to their display
// icon and color token.
var categoryStyles = map[string]Style{
	"comer-e-preparar":    {Icon: "🍽️", Color: "text-purple-600"},
	"saude-e-seguranca":   {Icon: "🛡️", Color: "text-red-600"},
	"dormir-e-descansar":  {Icon: "😴", Color: "text-blue-600"},
	"higiene-e-cuidados":  {Icon: "🧽", Color: "text-green-600"},
	"brincar-e-aprender":  {Icon: "🎨", Color: "text-yellow-600"},
	"organizar-e-guardar": {Icon: "📦", Color: "text-indigo-600"},
	"vestir-e-proteger":   {Icon: "👕", Color: "text-pink-600"},
}

// defaultStyle is used for any slug without a mapping. Style resolution
// never fails on an unknown slug.
var defaultStyle = Style{Icon: "📦", Color: "text-gray-600"}

// StyleFor resolves the display style for a category slug.
func StyleFor(slug string) Style {
	if style, ok := categoryStyles[slug]; ok {
		return style
	}
	return defaultStyle
}
