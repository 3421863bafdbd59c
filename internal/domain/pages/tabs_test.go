package pages

import "testing"

func TestCommunityContentMarksActiveTab(t *testing.T) {
	tabs, placeholder := communityContent(TabDiscussions)

	if len(tabs) != len(communityTabs) {
		t.Fatalf("tabs esperados %d, hubo %d", len(communityTabs), len(tabs))
	}
	for _, tv := range tabs {
		want := tv.Label == "Discussions"
		if tv.Active != want {
			t.Errorf("tab %q: Active = %v", tv.Label, tv.Active)
		}
	}
	if placeholder != "No open discussions right now." {
		t.Errorf("placeholder inesperado: %q", placeholder)
	}
}

func TestCommunityContentUnknownTabUsesDefaultPlaceholder(t *testing.T) {
	_, placeholder := communityContent(CommunityTab("videos"))
	if placeholder != "Nothing here yet." {
		t.Errorf("placeholder = %q", placeholder)
	}
}
