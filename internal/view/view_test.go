package view

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/motion"
)

func renderPage(t *testing.T, c models.Content) *html.Node {
	t.Helper()
	var b strings.Builder
	require.NoError(t, Page(c).Render(context.Background(), &b))
	doc, err := html.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func attrOf(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasClass(n *html.Node, name string) bool {
	v, _ := attrOf(n, "class")
	for _, c := range strings.Fields(v) {
		if c == name {
			return true
		}
	}
	return false
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byClass(n *html.Node, name string) []*html.Node {
	return findAll(n, func(n *html.Node) bool { return hasClass(n, name) })
}

func byTag(n *html.Node, tag string) []*html.Node {
	return findAll(n, func(n *html.Node) bool { return n.Data == tag })
}

func byID(n *html.Node, id string) *html.Node {
	found := findAll(n, func(n *html.Node) bool {
		v, ok := attrOf(n, "id")
		return ok && v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func TestProjectBlocksFollowContentOrder(t *testing.T) {
	c := content.Default()
	doc := renderPage(t, c)

	cards := byClass(doc, "project-card")
	require.Len(t, cards, len(c.Projects))

	for i, p := range c.Projects {
		card := cards[i]
		require.Len(t, byClass(card, "project-title"), 1)
		assert.Equal(t, p.Title, textOf(byClass(card, "project-title")[0]))
		assert.Equal(t, p.Description, textOf(byClass(card, "project-description")[0]))

		var tags []string
		for _, tag := range byClass(card, "tag") {
			tags = append(tags, textOf(tag))
		}
		assert.Equal(t, p.Technologies, tags, "tags of %q", p.Title)
	}
}

func TestSkillBlocksRenderCategoryAndSummary(t *testing.T) {
	c := content.Default()
	doc := renderPage(t, c)

	cards := byClass(doc, "skill-card")
	require.Len(t, cards, len(c.SkillGroups))

	for i, g := range c.SkillGroups {
		assert.Equal(t, g.Category, textOf(byClass(cards[i], "skill-category")[0]))
		assert.Equal(t, g.Summary, textOf(byClass(cards[i], "skill-summary")[0]))
		assert.Len(t, byTag(cards[i], "svg"), 1, "icon for %q", g.Category)
	}
}

func TestNavAnchorsResolveToSections(t *testing.T) {
	doc := renderPage(t, content.Default())

	nav := byTag(doc, "nav")
	require.Len(t, nav, 1)
	links := byClass(nav[0], "nav-link")
	require.Len(t, links, len(NavItems))

	want := map[string]string{"About": "about", "Projects": "projects", "Contact": "contact"}
	for i, link := range links {
		label := textOf(link)
		assert.Equal(t, NavItems[i], label)

		target, _ := attrOf(link, "href")
		assert.Equal(t, "#"+want[label], target)

		section := byID(doc, want[label])
		require.NotNil(t, section, "section for %s", label)
		assert.Equal(t, "section", section.Data)
	}
}

func TestSectionID(t *testing.T) {
	assert.Equal(t, "about", SectionID("About"))
	assert.Equal(t, "projects", SectionID(" Projects "))
	assert.Equal(t, "contact", SectionID("CONTACT"))
}

func TestContactLinksAreLiteral(t *testing.T) {
	c := content.Default()
	doc := renderPage(t, c)

	contact := byID(doc, "contact")
	require.NotNil(t, contact)

	mail := byClass(contact, "btn-mail")
	require.Len(t, mail, 1)
	target, _ := attrOf(mail[0], "href")
	assert.Equal(t, "mailto:karpe.vinayak2001@gmail.com", target)
	assert.Contains(t, textOf(mail[0]), "Say Hello")

	socials := byClass(contact, "social-link")
	require.Len(t, socials, len(c.Profile.Socials))
	for i, s := range c.Profile.Socials {
		got, _ := attrOf(socials[i], "href")
		assert.Equal(t, s.URL, got)
		label, _ := attrOf(socials[i], "aria-label")
		assert.Equal(t, s.Label, label)
	}
}

func TestEmptyProjectsRenderHeadingOnly(t *testing.T) {
	c := content.Default()
	c.Projects = nil
	doc := renderPage(t, c)

	section := byID(doc, "projects")
	require.NotNil(t, section)

	headings := byTag(section, "h2")
	require.Len(t, headings, 1)
	assert.Equal(t, ProjectsHeading, textOf(headings[0]))
	assert.Len(t, byClass(section, "divider"), 1)
	assert.Empty(t, byClass(section, "project-card"))
}

func TestImageBlockOmittedWithoutImage(t *testing.T) {
	c := content.Default()
	c.Projects[1].ImageURL = ""
	doc := renderPage(t, c)

	cards := byClass(doc, "project-card")
	require.Len(t, cards, 3)
	assert.Len(t, byClass(cards[0], "preview"), 1)
	assert.Empty(t, byClass(cards[1], "preview"))
	assert.Empty(t, byTag(cards[1], "img"))

	img := byTag(cards[0], "img")
	require.Len(t, img, 1)
	src, _ := attrOf(img[0], "src")
	assert.Equal(t, c.Projects[0].ImageURL, src)
	alt, _ := attrOf(img[0], "alt")
	assert.Equal(t, c.Projects[0].Title, alt)
}

func TestProjectLinksOpenExternally(t *testing.T) {
	c := content.Default()
	doc := renderPage(t, c)

	links := byClass(byClass(doc, "project-card")[0], "icon-link")
	require.Len(t, links, 2)

	repo, _ := attrOf(links[0], "href")
	live, _ := attrOf(links[1], "href")
	assert.Equal(t, c.Projects[0].RepositoryURL, repo)
	assert.Equal(t, "#", live)
	for _, l := range links {
		target, _ := attrOf(l, "target")
		rel, _ := attrOf(l, "rel")
		assert.Equal(t, "_blank", target)
		assert.Equal(t, "noreferrer", rel)
	}
}

func TestEntrancePresetsAttached(t *testing.T) {
	doc := renderPage(t, content.Default())

	hero := byClass(doc, "hero-inner")
	require.Len(t, hero, 1)
	v, _ := attrOf(hero[0], motion.AttrMotion)
	assert.Equal(t, motion.FadeUp.Name, v)
	trig, _ := attrOf(hero[0], motion.AttrTrigger)
	assert.Equal(t, string(motion.TriggerMount), trig)

	grids := byClass(doc, "grid")
	require.Len(t, grids, 2)
	for _, g := range grids {
		trig, _ := attrOf(g, motion.AttrTrigger)
		assert.Equal(t, string(motion.TriggerView), trig)
		_, stagger := attrOf(g, motion.AttrStagger)
		assert.True(t, stagger)
	}

	for i, card := range byClass(doc, "skill-card") {
		style, _ := attrOf(card, "style")
		assert.Equal(t, motion.DelayVar+":"+motion.Seconds(motion.StaggerChildren.Delay(i)), style)
		hover, _ := attrOf(card, motion.AttrHover)
		assert.Equal(t, motion.HoverLift.Name, hover)
	}

	// Every revealed element plays once.
	for _, n := range findAll(doc, func(n *html.Node) bool { _, ok := attrOf(n, motion.AttrTrigger); return ok }) {
		_, replay := attrOf(n, motion.AttrOnce)
		assert.False(t, replay)
	}
}

func TestPageHeadReferencesAssets(t *testing.T) {
	doc := renderPage(t, content.Default())

	title := byTag(doc, "title")
	require.Len(t, title, 1)
	assert.Equal(t, "Vinayak Karpe | Dev.Portfolio", textOf(title[0]))

	var hrefs []string
	for _, l := range byTag(doc, "link") {
		h, _ := attrOf(l, "href")
		hrefs = append(hrefs, h)
	}
	assert.Equal(t, []string{SiteStylesheet, MotionStylesheet}, hrefs)

	scripts := byTag(doc, "script")
	require.Len(t, scripts, 1)
	src, _ := attrOf(scripts[0], "src")
	assert.Equal(t, MotionScript, src)

	assert.Len(t, byClass(doc, "glow"), 2)
}

func TestTextIsEscaped(t *testing.T) {
	c := content.Default()
	c.Projects[0].Title = `<script>alert("x")</script>`
	c.Profile.Socials[0].URL = `https://example.com/?a=1&b="2"`

	var b strings.Builder
	require.NoError(t, Page(c).Render(context.Background(), &b))
	out := b.String()
	assert.NotContains(t, out, `<script>alert`)
	assert.Contains(t, out, "&lt;script&gt;")

	doc, err := html.Parse(strings.NewReader(out))
	require.NoError(t, err)
	got, _ := attrOf(byClass(doc, "social-link")[0], "href")
	assert.Equal(t, c.Profile.Socials[0].URL, got)
}

func TestIconUnknownGlyphRendersNothing(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Icon("rocket", 24).Render(context.Background(), &b))
	assert.Empty(t, b.String())

	b.Reset()
	require.NoError(t, Icon(models.IconMail, 20).Render(context.Background(), &b))
	assert.Contains(t, b.String(), `width="20"`)
	assert.Contains(t, b.String(), `class="icon icon-mail"`)
}

func TestLayoutColumns(t *testing.T) {
	c := content.Placeholder()
	doc := renderPage(t, c)

	assert.Len(t, byClass(doc, "cols-2"), 1)
	assert.Len(t, byClass(doc, "cols-4"), 1)
	assert.Empty(t, byClass(doc, "preview"))
}

func TestResumeLinkIsRelative(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/resume.pdf", "resume.pdf"},
		{"/docs/cv.pdf", "docs/cv.pdf"},
		{"https://cdn.example.com/cv.pdf", "https://cdn.example.com/cv.pdf"},
	}

	for _, tt := range tests {
		c := content.Default()
		c.Profile.ResumePath = tt.path
		doc := renderPage(t, c)

		buttons := byClass(doc, "btn-outline")
		require.Len(t, buttons, 1, tt.path)
		got, _ := attrOf(buttons[0], "href")
		assert.Equal(t, tt.want, got)
	}
}

func TestResumeLinkOmittedWhenUnset(t *testing.T) {
	c := content.Default()
	c.Profile.ResumePath = ""
	assert.Empty(t, byClass(renderPage(t, c), "btn-outline"))
}

func TestUncommonSchemesStayLiteral(t *testing.T) {
	c := content.Default()
	c.Profile.Socials[0].URL = "sms:+15550100"
	c.Projects[0].LiveURL = "ipfs://bafy/site"

	doc := renderPage(t, c)
	got, _ := attrOf(byClass(doc, "social-link")[0], "href")
	assert.Equal(t, "sms:+15550100", got)

	links := byClass(byClass(doc, "project-card")[0], "icon-link")
	require.Len(t, links, 2)
	live, _ := attrOf(links[1], "href")
	assert.Equal(t, "ipfs://bafy/site", live)
}

func TestRenderStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := Page(content.Default()).Render(ctx, &b)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, b.String())
}

func TestDocumentStartsWithDoctype(t *testing.T) {
	var b strings.Builder
	require.NoError(t, Page(content.Default()).Render(context.Background(), &b))
	assert.True(t, strings.HasPrefix(b.String(), "<!doctype html>"))
}
