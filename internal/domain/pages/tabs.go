package pages

// CommunityTab es la tabla explícita de tabs de comunidad. El tab activo se
// resuelve por clave de ruta, nunca comparando strings de path sueltos: si
// un path cambia, cambia acá y en el router a la vez.
type CommunityTab string

const (
	TabPosts       CommunityTab = "posts"
	TabDiscussions CommunityTab = "discussions"
	TabEvents      CommunityTab = "events"
)

type tabDef struct {
	Tab         CommunityTab
	Label       string
	Href        string
	Placeholder string
}

var communityTabs = []tabDef{
	{TabPosts, "Posts", "/community/posts", "No posts yet. Be the first to share your experience."},
	{TabDiscussions, "Discussions", "/community/discussions", "No open discussions right now."},
	{TabEvents, "Events", "/community/events", "No community events scheduled."},
}

// TabView es lo que consume la plantilla.
type TabView struct {
	Label  string
	Href   string
	Active bool
}

func communityContent(active CommunityTab) (tabs []TabView, placeholder string) {
	placeholder = "Nothing here yet."
	for _, t := range communityTabs {
		tabs = append(tabs, TabView{
			Label:  t.Label,
			Href:   t.Href,
			Active: t.Tab == active,
		})
		if t.Tab == active {
			placeholder = t.Placeholder
		}
	}
	return tabs, placeholder
}
