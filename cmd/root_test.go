package cmd

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMediaTitle(t *testing.T) {
	Convey("MediaTitle", t, func() {
		Convey("Should use the file name of a local path", func() {
			So(MediaTitle("/home/user/videos/clip.mp4"), ShouldEqual, "clip.mp4")
			So(MediaTitle("clip.mkv"), ShouldEqual, "clip.mkv")
		})

		Convey("Should use the last path segment of a URL", func() {
			So(MediaTitle("https://example.com/media/talk.webm?t=3"), ShouldEqual, "talk.webm")
		})

		Convey("Should fall back to the host for bare URLs", func() {
			So(MediaTitle("https://example.com/"), ShouldEqual, "example.com")
		})
	})
}

func TestRootCommand(t *testing.T) {
	Convey("rootCmd", t, func() {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		Reset(func() {
			rootCmd.SetArgs(nil)
			_ = rootCmd.Flags().Set("version", "false")
			rootCmd.Flags().Lookup("version").Changed = false
		})

		Convey("Should print the version without a media argument", func() {
			rootCmd.SetArgs([]string{"--version"})
			So(rootCmd.Execute(), ShouldBeNil)
			So(out.String(), ShouldContainSubstring, "mpvctl "+Version)
		})

		Convey("Should require exactly one media argument", func() {
			rootCmd.SetArgs([]string{})
			So(rootCmd.Execute(), ShouldNotBeNil)

			rootCmd.SetArgs([]string{"a.mp4", "b.mp4"})
			So(rootCmd.Execute(), ShouldNotBeNil)
		})
	})
}
