/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesorter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package htmltable

import (
	"strings"

	"golang.org/x/net/html"
)

// findNodes returns every node below (and including) node for which want is
// true. It does not descend into matching nodes.
func findNodes(node *html.Node, want func(*html.Node) bool) []*html.Node {
	if want(node) {
		return []*html.Node{node}
	}
	var results []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		results = append(results, findNodes(child, want)...)
	}
	return results
}

// findFirst returns the first node in document order for which want is true
func findFirst(node *html.Node, want func(*html.Node) bool) *html.Node {
	if want(node) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := findFirst(child, want); found != nil {
			return found
		}
	}
	return nil
}

// isElement matches element nodes with one of the given tag names
func isElement(tags ...string) func(*html.Node) bool {
	return func(node *html.Node) bool {
		if node.Type != html.ElementNode {
			return false
		}
		for _, tag := range tags {
			if node.Data == tag {
				return true
			}
		}
		return false
	}
}

// childElements returns the direct element children of node with the given tag
func childElements(node *html.Node, tag string) []*html.Node {
	var results []*html.Node
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == tag {
			results = append(results, child)
		}
	}
	return results
}

func getAttr(node *html.Node, key string) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttr(node *html.Node, key, val string) {
	for i, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			node.Attr[i].Val = val
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(node *html.Node, key string) {
	attrs := node.Attr[:0]
	for _, attr := range node.Attr {
		if attr.Namespace == "" && attr.Key == key {
			continue
		}
		attrs = append(attrs, attr)
	}
	node.Attr = attrs
}

func classes(node *html.Node) []string {
	v, _ := getAttr(node, "class")
	return strings.Fields(v)
}

func hasClass(node *html.Node, class string) bool {
	for _, c := range classes(node) {
		if c == class {
			return true
		}
	}
	return false
}

// addClass appends class to node's class list if missing
func addClass(node *html.Node, class string) {
	if hasClass(node, class) {
		return
	}
	setAttr(node, "class", strings.Join(append(classes(node), class), " "))
}

// removeClass drops class from node's class list, removing the attribute
// once the list is empty
func removeClass(node *html.Node, class string) {
	current := classes(node)
	kept := current[:0]
	for _, c := range current {
		if c != class {
			kept = append(kept, c)
		}
	}
	if len(kept) == 0 {
		removeAttr(node, "class")
		return
	}
	setAttr(node, "class", strings.Join(kept, " "))
}

// textContent returns the whitespace-collapsed text below node
func textContent(node *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return strings.Join(strings.Fields(b.String()), " ")
}

// removeChildren detaches every child of node
func removeChildren(node *html.Node) {
	for child := node.FirstChild; child != nil; {
		next := child.NextSibling
		node.RemoveChild(child)
		child = next
	}
}
