// Package handle translates binary cache handles found in replay init data
// into depot resource locators.
//
// A cache handle packs a four character "purpose" code, a four character
// "region" code, and a content hash into one byte blob. TranslateHandle
// renders that blob as the depot URI the game client would fetch, and
// TranslateInitData rewrites the handle list of a decoded init-data record in
// place.
package handle
